package completions

import (
	"fmt"
	"strings"
)

// words lists the completions offered after a command name: options as
// --name= and flags as -name.
func words(c CommandInfo) []string {
	var out []string
	for _, o := range c.Options {
		out = append(out, "--"+o+"=")
	}
	for _, f := range c.Flags {
		out = append(out, "-"+f)
	}
	return out
}

// quote wraps s in single quotes for sh-like shells.
func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func names(commands []CommandInfo) string {
	out := make([]string, len(commands))
	for i, c := range commands {
		out[i] = c.Name
	}
	return strings.Join(out, " ")
}

func GenerateBash(bin string, commands []CommandInfo) string {
	var b strings.Builder
	fn := "_" + bin + "_completions"

	fmt.Fprintf(&b, "# %s bash completion script\n", bin)
	fmt.Fprintf(&b, "%s() {\n", fn)
	b.WriteString("    local cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    if [[ ${COMP_CWORD} -eq 1 ]]; then\n")
	fmt.Fprintf(&b, "        COMPREPLY=($(compgen -W %s -- \"$cur\"))\n", quote(names(commands)))
	b.WriteString("        return\n")
	b.WriteString("    fi\n")
	b.WriteString("    case \"${COMP_WORDS[1]}\" in\n")
	for _, c := range commands {
		w := words(c)
		if len(w) == 0 {
			continue
		}
		fmt.Fprintf(&b, "        %s)\n", c.Name)
		fmt.Fprintf(&b, "            COMPREPLY=($(compgen -W %s -- \"$cur\"))\n", quote(strings.Join(w, " ")))
		b.WriteString("            ;;\n")
	}
	b.WriteString("    esac\n")
	b.WriteString("}\n")
	fmt.Fprintf(&b, "complete -o nospace -F %s %s\n", fn, bin)
	return b.String()
}

func GenerateZsh(bin string, commands []CommandInfo) string {
	var b strings.Builder

	fmt.Fprintf(&b, "#compdef %s\n", bin)
	fmt.Fprintf(&b, "# %s zsh completion script\n\n", bin)

	fmt.Fprintf(&b, "_%s_commands() {\n", bin)
	b.WriteString("    local -a commands\n")
	b.WriteString("    commands=(\n")
	for _, c := range commands {
		entry := strings.ReplaceAll(c.Name, ":", `\:`) + ":" + c.Summary
		fmt.Fprintf(&b, "        %s\n", quote(entry))
	}
	b.WriteString("    )\n")
	b.WriteString("    _describe 'command' commands\n")
	b.WriteString("}\n\n")

	fmt.Fprintf(&b, "_%s() {\n", bin)
	b.WriteString("    if (( CURRENT == 2 )); then\n")
	fmt.Fprintf(&b, "        _%s_commands\n", bin)
	b.WriteString("        return\n")
	b.WriteString("    fi\n")
	b.WriteString("    case \"$words[2]\" in\n")
	for _, c := range commands {
		w := words(c)
		if len(w) == 0 {
			continue
		}
		quoted := make([]string, len(w))
		for i, s := range w {
			quoted[i] = quote(s)
		}
		fmt.Fprintf(&b, "        %s)\n", c.Name)
		fmt.Fprintf(&b, "            compadd -S '' -- %s\n", strings.Join(quoted, " "))
		b.WriteString("            ;;\n")
	}
	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	fmt.Fprintf(&b, "compdef _%s %s\n", bin, bin)
	return b.String()
}

func GenerateFish(bin string, commands []CommandInfo) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s fish completion script\n", bin)
	fmt.Fprintf(&b, "complete -c %s -f\n", bin)

	for _, c := range commands {
		fmt.Fprintf(&b, "complete -c %s -n '__fish_use_subcommand' -a %s", bin, quote(c.Name))
		if c.Summary != "" {
			fmt.Fprintf(&b, " -d %s", quote(c.Summary))
		}
		b.WriteString("\n")

		cond := quote("__fish_seen_subcommand_from " + c.Name)
		for _, o := range c.Options {
			fmt.Fprintf(&b, "complete -c %s -n %s -l %s -r\n", bin, cond, o)
		}
		for _, f := range c.Flags {
			fmt.Fprintf(&b, "complete -c %s -n %s -o %s\n", bin, cond, f)
		}
	}
	return b.String()
}
