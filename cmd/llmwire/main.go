// Command llmwire sends one prompt to the configured provider and prints the
// response, streamed to the terminal as it arrives when streaming is on.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/viper"

	"github.com/spindle-ai/llmwire"
)

func main() {
	configPath := flag.String("config", "llmwire.yaml", "path to the client configuration file")
	prompt := flag.String("prompt", "say hello", "prompt to send")
	imageURL := flag.String("image", "", "image URL to attach to the prompt")
	stream := flag.Bool("stream", false, "stream the response regardless of the configured default")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "llmwire:", err)
		os.Exit(1)
	}
	if *stream {
		cfg.Stream = true
	}

	client, err := llmwire.New(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "llmwire:", err)
		os.Exit(1)
	}

	res := <-client.CallAsync(context.Background(), llmwire.Request{
		Prompt:   *prompt,
		ImageURL: *imageURL,
		Reporter: llmwire.NewWriterReporter(os.Stdout),
		Segment:  "cli",
		Tag:      client.Name(),
	})
	if res.Err != nil {
		fmt.Fprintln(os.Stderr, "llmwire:", res.Err)
		os.Exit(1)
	}
	if res.Result.IsToolCall() {
		for _, call := range res.Result.ToolMessage.ToolCalls {
			fmt.Printf("tool call: %s(%s)\n", call.Function.Name, call.Function.Arguments)
		}
	}
}

func loadConfig(path string) (llmwire.Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("provider", llmwire.ProviderOpenAI)
	v.SetEnvPrefix("LLMWIRE")
	v.AutomaticEnv()
	if err := v.ReadInConfig(); err != nil {
		return llmwire.Config{}, fmt.Errorf("read config: %w", err)
	}
	var cfg llmwire.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return llmwire.Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}
