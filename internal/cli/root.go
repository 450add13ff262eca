package cli

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/shaiso/flowstudio-cli/internal/domain"
	"github.com/shaiso/flowstudio-cli/internal/mcp"
	"github.com/shaiso/flowstudio-cli/internal/snapshot"
	"github.com/shaiso/flowstudio-cli/internal/telemetry"
)

const (
	// tokenEnv — переменная окружения с API-ключом MCP-сервера.
	tokenEnv = "FLOWSTUDIO_MCP_TOKEN_FS"

	defaultEndpoint     = "https://mcp.flowstudio.app/mcp"
	defaultSnapshotPath = "mcp_flows.json"
	defaultTimeout      = 60 * time.Second
)

// ErrNoToken — в окружении нет API-ключа. Текст диагностики фиксирован.
var ErrNoToken = errors.New("NO TOKEN SET")

// Config — параметры одного запуска.
type Config struct {
	Token        string
	Endpoint     string
	SnapshotPath string
	Timeout      time.Duration
	InvocationID string
	Logger       *slog.Logger
}

// NewRootCmd создаёт корневую команду flowstudio-cli.
func NewRootCmd(version string) *cobra.Command {
	var (
		apiURL     string
		outputPath string
		jsonOutput bool
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:           "flowstudio-cli",
		Short:         "FlowStudio CLI — list flows from the MCP server",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := telemetry.SetupLogger(verbose)
			invocationID := uuid.NewString()

			cfg := Config{
				Token:        os.Getenv(tokenEnv),
				Endpoint:     apiURL,
				SnapshotPath: outputPath,
				Timeout:      defaultTimeout,
				InvocationID: invocationID,
				Logger:       telemetry.WithInvocationID(logger, invocationID),
			}

			return run(cmd.Context(), cfg, NewOutput(jsonOutput))
		},
	}

	cmd.Flags().StringVar(&apiURL, "api-url", defaultEndpoint, "MCP server URL")
	cmd.Flags().StringVar(&outputPath, "output", defaultSnapshotPath, "Snapshot file path")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "Enable debug logging")

	return cmd
}

// run выполняет один цикл: запрос списка flows, снапшот, вывод.
//
// Снапшот пишется до презентации: payload с ошибкой сервиса всё
// равно остаётся на диске.
func run(ctx context.Context, cfg Config, out *Output) error {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	// Без ключа не делаем ни одного сетевого вызова.
	if cfg.Token == "" {
		return ErrNoToken
	}

	client := mcp.NewClient(mcp.Config{
		Endpoint:     cfg.Endpoint,
		APIKey:       cfg.Token,
		InvocationID: cfg.InvocationID,
		Timeout:      cfg.Timeout,
		Logger:       logger,
	})

	payload, err := client.ListFlows(ctx)
	if err != nil {
		return err
	}

	if err := snapshot.Write(cfg.SnapshotPath, payload); err != nil {
		return err
	}
	logger.Debug("snapshot written", "path", cfg.SnapshotPath, "bytes", len(payload))

	p := domain.Classify(payload)
	switch p.Kind {
	case domain.KindFlows:
		out.Flows(p.Flows, payload)
		return nil
	case domain.KindError:
		return &domain.ServiceError{Detail: p.Error}
	default:
		out.Dump(payload)
		return nil
	}
}
