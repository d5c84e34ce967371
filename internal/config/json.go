package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations, so operators can keep a single config file next
// to the binary instead of exporting a dozen environment variables.
type StructuredJSONConfig struct {
	App struct {
		EncryptionKey         string `json:"encryption_key"`
		PreviousEncryptionKey string `json:"previous_encryption_key"`
		DefaultIssuerName     string `json:"default_issuer_name"`
		Version               string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Files struct {
			Backend       string `json:"backend"`
			BinaryDataDir string `json:"binary_data_dir"`
			S3Bucket      string `json:"s3_bucket"`
			S3Region      string `json:"s3_region"`
			S3Endpoint    string `json:"s3_endpoint"`
		} `json:"files,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Verifier struct {
		URL            string   `json:"url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"verifier,omitempty"`

	Registry struct {
		BaseURL        string   `json:"base_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"registry,omitempty"`

	Rotation struct {
		BatchSize int `json:"batch_size"`
	} `json:"rotation,omitempty"`

	Workers struct {
		EligibilityInterval  Duration `json:"eligibility_interval"`
		VerificationInterval Duration `json:"verification_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			EncryptionKey:         jsonCfg.App.EncryptionKey,
			PreviousEncryptionKey: jsonCfg.App.PreviousEncryptionKey,
			DefaultIssuerName:     jsonCfg.App.DefaultIssuerName,
			Version:               jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Files: Files{
				Backend:       jsonCfg.Storage.Files.Backend,
				BinaryDataDir: jsonCfg.Storage.Files.BinaryDataDir,
				S3Bucket:      jsonCfg.Storage.Files.S3Bucket,
				S3Region:      jsonCfg.Storage.Files.S3Region,
				S3Endpoint:    jsonCfg.Storage.Files.S3Endpoint,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Verifier: Verifier{
			URL:            jsonCfg.Verifier.URL,
			RequestTimeout: time.Duration(jsonCfg.Verifier.RequestTimeout),
		},
		Registry: Registry{
			BaseURL:        jsonCfg.Registry.BaseURL,
			RequestTimeout: time.Duration(jsonCfg.Registry.RequestTimeout),
		},
		Rotation: Rotation{
			BatchSize: jsonCfg.Rotation.BatchSize,
		},
		Workers: Workers{
			EligibilityInterval:  time.Duration(jsonCfg.Workers.EligibilityInterval),
			VerificationInterval: time.Duration(jsonCfg.Workers.VerificationInterval),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
