package config

import (
	"context"
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

const envVarsPrefix = "/quicknotes/prod/"

// Config is built once at process start and passed by reference into each
// component; nothing reads the environment after Load returns.
type Config struct {
	Addr           string
	DatabasePath   string
	MachineID      int64
	JWTSecret      string
	GoogleClientID string

	SMTPHost     string
	SMTPPort     int
	MailUsername string
	MailPassword string
	MailFrom     string
	MailTimeout  time.Duration
}

// Load reads env vars depending on environment: AWS SSM Parameter Store in
// production, a local .env file otherwise.
func Load() (*Config, error) {
	if os.Getenv("GO_ENV") == "production" {
		if err := loadProdEnv(); err != nil {
			return nil, err
		}
	} else {
		if err := godotenv.Load(); err != nil {
			log.Warnf("no .env file loaded: %v", err)
		}
	}

	cfg := &Config{
		Addr:           getEnv("ADDR", ":7070"),
		DatabasePath:   getEnv("DB_PATH", "database.db"),
		MachineID:      getEnvInt64("MACHINE_ID", 1),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		GoogleClientID: os.Getenv("GOOGLE_CLIENT_ID"),
		SMTPHost:       getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:       int(getEnvInt64("SMTP_PORT", 587)),
		MailUsername:   os.Getenv("MAIL_USER"),
		MailPassword:   os.Getenv("MAIL_PASS"),
		MailFrom:       getEnv("MAIL_FROM", os.Getenv("MAIL_USER")),
		MailTimeout:    getEnvDuration("MAIL_TIMEOUT", 10*time.Second),
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("config: JWT_SECRET is required")
	}
	return cfg, nil
}

func loadProdEnv() error {
	ctx := context.Background()
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(getEnv("AWS_REGION", "us-east-2")))
	if err != nil {
		return err
	}

	client := ssm.NewFromConfig(cfg)
	out, err := client.GetParametersByPath(ctx, &ssm.GetParametersByPathInput{
		Path:           aws.String(envVarsPrefix),
		WithDecryption: aws.Bool(true),
		Recursive:      aws.Bool(true),
	})
	if err != nil {
		return err
	}

	prefixLength := len(envVarsPrefix)
	// Export vars
	for _, param := range out.Parameters {
		key := (*param.Name)[prefixLength:]
		if err := os.Setenv(key, *param.Value); err != nil {
			return err
		}
	}
	log.Debugf("loaded %d prod environment variables", len(out.Parameters))
	return nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}

	parsed, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		log.Warnf("invalid value for %s, using default: %v", key, err)
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}

	parsed, err := time.ParseDuration(val)
	if err != nil {
		log.Warnf("invalid value for %s, using default: %v", key, err)
		return fallback
	}
	return parsed
}
