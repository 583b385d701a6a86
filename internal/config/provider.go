package config

import (
	"fmt"

	"github.com/footprint-tools/sealion/internal/domain"
)

// Provider exposes the config file as a domain.ConfigProvider.
type Provider struct{}

func NewProvider() *Provider {
	return &Provider{}
}

func (p *Provider) Get(key string) (string, bool) {
	return Get(key)
}

func (p *Provider) GetAll() (map[string]string, error) {
	return GetAll()
}

// Set rejects keys not listed in domain.ConfigKeys.
func (p *Provider) Set(key, value string) error {
	if !domain.IsValidConfigKey(key) {
		return fmt.Errorf("config: unknown key %q", key)
	}

	lines, err := ReadLines()
	if err != nil {
		return err
	}

	lines, _ = Set(lines, key, value)
	return WriteLines(lines)
}

func (p *Provider) Unset(key string) error {
	lines, err := ReadLines()
	if err != nil {
		return err
	}

	lines, _ = Unset(lines, key)
	return WriteLines(lines)
}

var _ domain.ConfigProvider = (*Provider)(nil)
