package llmwire

import (
	"fmt"
	"sort"
	"strings"
)

// Provider tags understood by New. The OpenAI-compatible tags are aliases
// for the same variant; the mapping is fixed at compile time.
const (
	ProviderOpenAI      = "openai"
	ProviderMaaS        = "maas"
	ProviderVLLM        = "vllm"
	ProviderAzureOpenAI = "azure_openai"
)

var providerBuilders = map[string]func(Config) (Client, error){
	ProviderOpenAI:      func(cfg Config) (Client, error) { return NewOpenAIClient(cfg) },
	ProviderMaaS:        func(cfg Config) (Client, error) { return NewOpenAIClient(cfg) },
	ProviderVLLM:        func(cfg Config) (Client, error) { return NewOpenAIClient(cfg) },
	ProviderAzureOpenAI: func(cfg Config) (Client, error) { return NewAzureOpenAIClient(cfg) },
}

// New builds the client variant selected by cfg.Provider.
func New(cfg Config) (Client, error) {
	build, ok := providerBuilders[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("%w %q, known providers: %s",
			ErrUnknownProvider, cfg.Provider, strings.Join(Providers(), ", "))
	}
	return build(cfg)
}

// Providers returns the known provider tags, sorted.
func Providers() []string {
	tags := make([]string, 0, len(providerBuilders))
	for tag := range providerBuilders {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
