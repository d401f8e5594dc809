package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"todo-list/internal/assistant"
	"todo-list/internal/config"
	"todo-list/internal/repository/sqlite"
	"todo-list/internal/server"
	"todo-list/internal/services"
	"todo-list/internal/validation"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd *cobra.Command

	configFile string
	port       int
	dbDir      string
	dbFilename string
	logLevel   string
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand() *RootCommand {
	root := &RootCommand{}

	root.cmd = &cobra.Command{
		Use:   "todo",
		Short: "A todo list web server with an AI assistant",
		Long: `Todo List is a single-user todo list served over HTTP.

It stores todos in a local SQLite database and exposes a JSON API for
creating, listing, updating and deleting todos, plus an AI assistant
endpoint backed by Gemini.

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > config file > defaults

  Server Configuration:
    TODO_PORT                  HTTP port (default: 5001)
    TODO_CORS_ORIGINS          Comma-separated allowed origins (default: *)
    TODO_LOG_LEVEL             Log level (default: info)

  Database Configuration:
    TODO_DB_DIR                Database directory (default: ~/.todo)
    TODO_DB_FILENAME           Database filename (default: todos.db)
    TODO_DB_QUERY_TIMEOUT      Query timeout (default: 10s)
    TODO_DB_WRITE_TIMEOUT      Write timeout (default: 5s)

  Assistant Configuration:
    GOOGLE_API_KEY             Gemini API key (assistant disabled when unset)
    TODO_ASSISTANT_MODEL       Model name (default: gemini-1.5-flash)
    TODO_ASSISTANT_TIMEOUT     Request timeout (default: 30s)

  Validation Configuration:
    TODO_CONTENT_MAX_LENGTH    Max todo content length (default: 200)

  A TOML config file can be passed with --config or TODO_CONFIG_FILE.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.StringVar(&r.configFile, "config", "", "Path to TOML config file (overrides TODO_CONFIG_FILE)")
	flags.IntVar(&r.port, "port", 0, "HTTP port (overrides TODO_PORT)")
	flags.StringVar(&r.dbDir, "db-dir", "", "Database directory (overrides TODO_DB_DIR)")
	flags.StringVar(&r.dbFilename, "db-filename", "", "Database filename (overrides TODO_DB_FILENAME)")
	flags.StringVar(&r.logLevel, "log-level", "", "Log level (overrides TODO_LOG_LEVEL)")
}

func (r *RootCommand) addSubcommands() {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the todo list HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := r.loadConfig()
			if err != nil {
				return err
			}
			return runServer(cfg)
		},
	}

	r.cmd.AddCommand(serveCmd)
}

// loadConfig builds the configuration, applying flag overrides last.
func (r *RootCommand) loadConfig() (*config.Config, error) {
	overrides := &config.Overrides{}
	if r.port > 0 {
		overrides.Port = &r.port
	}
	if r.dbDir != "" {
		overrides.DBDir = &r.dbDir
	}
	if r.dbFilename != "" {
		overrides.DBFilename = &r.dbFilename
	}
	if r.logLevel != "" {
		overrides.LogLevel = &r.logLevel
	}

	return config.NewLoader().LoadWithOverrides(r.configFile, overrides)
}

func runServer(cfg *config.Config) error {
	logger, err := newLogger(cfg.Server.LogLevel)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.Database.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}

	repo, err := sqlite.NewWithTimeouts(cfg.GetDatabasePath(), cfg.Database.QueryTimeout, cfg.Database.WriteTimeout)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer repo.Close()

	validator := validation.NewTodoValidatorWithLimit(cfg.Validation.ContentMaxLength)
	todoService := services.NewTodoServiceWithValidator(repo, validator)

	var generate assistant.Generator
	if cfg.AssistantConfigured() {
		client := assistant.NewGeminiClient(cfg.Assistant.APIKey, cfg.Assistant.Model, cfg.Assistant.Timeout)
		generate = client.Generate
		logger.Info().Str("model", cfg.Assistant.Model).Msg("assistant enabled")
	} else {
		logger.Warn().Msg("GOOGLE_API_KEY not set, assistant endpoint disabled")
	}
	assistantService := services.NewAssistantService(generate)

	srv := server.New(todoService, assistantService, logger)

	handler := cors.New(cors.Options{
		AllowedOrigins: cfg.Server.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}).Handler(srv.Router())

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logger.Info().
		Str("addr", addr).
		Str("database", cfg.GetDatabasePath()).
		Msg("starting server")

	return http.ListenAndServe(addr, handler)
}

func newLogger(level string) (zerolog.Logger, error) {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", level, err)
	}

	return zerolog.New(os.Stdout).Level(parsed).With().Timestamp().Logger(), nil
}
