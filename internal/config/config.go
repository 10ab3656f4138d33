package config

import (
	"time"

	"github.com/urfave/cli/v3"
)

type Config struct {
	Client
	Server
	Ghostscript
	ClamAV
	PostgreSQL
	HTTP
}

type Client struct {
	Endpoint   string
	Level      string
	OutputDir  string
	ReportPath string
	Timeout    time.Duration
}

type Server struct {
	WorkDir       string
	MaxUploadSize int64
}

type Ghostscript struct {
	Path string
}

// ClamAV scanning is disabled when Address is empty.
type ClamAV struct {
	Address string
}

// PostgreSQL history is disabled when Host is empty.
type PostgreSQL struct {
	Host     string
	Port     string
	Username string
	Password string
	DBName   string

	ConnectRetries int
	RetryDelay     time.Duration
}

type HTTP struct {
	Host         string
	Port         string
	IdleTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

func (c PostgreSQL) Enabled() bool {
	return c.Host != ""
}

func (c ClamAV) Enabled() bool {
	return c.Address != ""
}

// LoadClient reads the flags of the compress command.
func LoadClient(cmd *cli.Command) *Config {
	return &Config{
		Client: Client{
			Endpoint:   cmd.String("endpoint"),
			Level:      cmd.String("level"),
			OutputDir:  cmd.String("output-dir"),
			ReportPath: cmd.String("report"),
			Timeout:    cmd.Duration("timeout"),
		},
	}
}

// LoadServer reads the flags of the serve command.
func LoadServer(cmd *cli.Command) *Config {
	return &Config{
		Server: Server{
			WorkDir:       cmd.String("work-dir"),
			MaxUploadSize: cmd.Int64("max-upload-size"),
		},
		Ghostscript: Ghostscript{
			Path: cmd.String("gs-path"),
		},
		ClamAV: ClamAV{
			Address: cmd.String("clamav-address"),
		},
		PostgreSQL: PostgreSQL{
			Host:     cmd.String("pg-host"),
			Port:     cmd.String("pg-port"),
			Username: cmd.String("pg-username"),
			Password: cmd.String("pg-password"),
			DBName:   cmd.String("pg-dbname"),

			ConnectRetries: int(cmd.Int("pg-connect-retries")),
			RetryDelay:     cmd.Duration("pg-retry-delay"),
		},
		HTTP: HTTP{
			Host:         cmd.String("http-host"),
			Port:         cmd.String("http-port"),
			IdleTimeout:  cmd.Duration("http-idle-timeout"),
			ReadTimeout:  cmd.Duration("http-read-timeout"),
			WriteTimeout: cmd.Duration("http-write-timeout"),
		},
	}
}
