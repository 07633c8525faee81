// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	slogmulti "github.com/samber/slog-multi"
	"github.com/urfave/cli/v2"

	"github.com/poiesic/autointel"
	"github.com/poiesic/autointel/ai"
	"github.com/poiesic/autointel/ingestion"
	"github.com/poiesic/autointel/server"
)

func main() {
	app := &cli.App{
		Name:  "autointel",
		Usage: "Conversational assistant for vehicle manuals, recalls, and reviews",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "Also write JSON logs to this file",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "chat",
				Usage:  "Start an interactive chat session",
				Action: chatCommand,
				Flags:  append(storageFlags(), aiFlags()...),
			},
			{
				Name:   "serve",
				Usage:  "Serve the assistant over HTTP",
				Action: serveCommand,
				Flags: append(append(storageFlags(), aiFlags()...),
					&cli.StringFlag{
						Name:  "addr",
						Usage: "Listen address",
						Value: ":8080",
					},
				),
			},
			{
				Name:      "ingest",
				Usage:     "Seed the manual passage index from a directory of text files",
				ArgsUsage: "<directory>",
				Action:    ingestCommand,
				Flags: append(append(storageFlags(), aiFlags()...),
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Embedding worker pool size (0 = auto)",
					},
				),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func storageFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "db",
			Aliases:  []string{"d"},
			Usage:    "Path to BadgerDB database directory",
			Required: true,
		},
	}
}

func aiFlags() []cli.Flag {
	defaults := ai.DefaultConfig()
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "ai-host",
			Usage: "OpenAI-compatible service host URL (applies to chat, moderation, and embeddings)",
		},
		&cli.StringFlag{
			Name:  "chat-model",
			Usage: "Chat model name",
			Value: defaults.ChatModel,
		},
		&cli.StringFlag{
			Name:  "moderation-model",
			Usage: "Moderation model name",
			Value: defaults.ModerationModel,
		},
		&cli.StringFlag{
			Name:  "embedding-model",
			Usage: "Embedding model name",
			Value: defaults.EmbeddingModel,
		},
	}
}

func aiConfigFromFlags(c *cli.Context) *ai.Config {
	opts := []ai.ConfigOption{
		ai.WithChatModel(c.String("chat-model")),
		ai.WithModerationModel(c.String("moderation-model")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
	}
	if host := c.String("ai-host"); host != "" {
		opts = append(opts, ai.WithHost(host))
	}
	return ai.NewConfig(opts...)
}

func openAssistant(c *cli.Context) (*autointel.Assistant, error) {
	return autointel.NewAssistant(c.String("db"), autointel.WithAIConfig(aiConfigFromFlags(c)))
}

func chatCommand(c *cli.Context) error {
	assistant, err := openAssistant(c)
	if err != nil {
		return err
	}
	defer assistant.Close()

	sessionID := autointel.NewSessionID()
	fmt.Println("autointel ready. Type a question, 'reset' for a new session, or 'quit' to exit.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch strings.ToLower(line) {
		case "quit", "exit", "q":
			return nil
		case "reset":
			if err := assistant.ResetSession(c.Context, sessionID); err != nil {
				slog.Error("reset failed", "err", err)
			}
			sessionID = autointel.NewSessionID()
			fmt.Println("Started a new session.")
			continue
		}

		reply, err := assistant.Chat(c.Context, sessionID, line)
		if err != nil {
			slog.Error("chat turn failed", "err", err)
			continue
		}
		fmt.Println(reply)
	}
	return scanner.Err()
}

func serveCommand(c *cli.Context) error {
	assistant, err := openAssistant(c)
	if err != nil {
		return err
	}
	defer assistant.Close()

	return server.New(assistant).Run(c.String("addr"))
}

func ingestCommand(c *cli.Context) error {
	dir := c.Args().First()
	if dir == "" {
		return fmt.Errorf("usage: autointel ingest <directory>")
	}

	assistant, err := openAssistant(c)
	if err != nil {
		return err
	}
	defer assistant.Close()

	var opts []ingestion.Option
	if workers := c.Int("workers"); workers > 0 {
		opts = append(opts, ingestion.WithPoolSize(workers))
	}

	pipeline, err := assistant.NewIngestionPipeline(opts...)
	if err != nil {
		return err
	}
	defer pipeline.Release()

	total, err := pipeline.IngestDirectory(context.Background(), dir)
	if err != nil {
		return err
	}

	fmt.Printf("Ingested %d passages from %s\n", total, dir)
	return nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	stderrHandler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})

	if logFile := c.String("log-file"); logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		fileHandler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: level})
		slog.SetDefault(slog.New(slogmulti.Fanout(stderrHandler, fileHandler)))
		return nil
	}

	slog.SetDefault(slog.New(stderrHandler))
	return nil
}
