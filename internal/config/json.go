package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the JSON configuration file.
type StructuredJSONConfig struct {
	App struct {
		MerchantIdentifier    string `json:"merchant_identifier"`
		DisplayName           string `json:"display_name"`
		DomainName            string `json:"domain_name"`
		ValidationHostPattern string `json:"validation_host_pattern"`
		Version               string `json:"version"`
		LogLevel              string `json:"log_level"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress           string   `json:"http_address"`
		RequestTimeout        Duration `json:"request_timeout"`
		ShutdownTimeout       Duration `json:"shutdown_timeout"`
		DomainAssociationFile string   `json:"domain_association_file"`
	} `json:"server,omitempty"`

	Adapter struct {
		RequestTimeout  Duration `json:"request_timeout"`
		CertificatePath string   `json:"certificate_path"`
		KeyPath         string   `json:"key_path"`
	} `json:"adapter,omitempty"`
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

	return &StructuredConfig{
		App: App{
			MerchantIdentifier:    jsonCfg.App.MerchantIdentifier,
			DisplayName:           jsonCfg.App.DisplayName,
			DomainName:            jsonCfg.App.DomainName,
			ValidationHostPattern: jsonCfg.App.ValidationHostPattern,
			Version:               jsonCfg.App.Version,
			LogLevel:              jsonCfg.App.LogLevel,
		},
		Server: Server{
			HTTPAddress:           jsonCfg.Server.HTTPAddress,
			RequestTimeout:        time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout:       time.Duration(jsonCfg.Server.ShutdownTimeout),
			DomainAssociationFile: jsonCfg.Server.DomainAssociationFile,
		},
		Adapter: Adapter{
			RequestTimeout:  time.Duration(jsonCfg.Adapter.RequestTimeout),
			CertificatePath: jsonCfg.Adapter.CertificatePath,
			KeyPath:         jsonCfg.Adapter.KeyPath,
		},
	}, nil
}

// Duration is a wrapper around time.Duration that unmarshals from strings
// like "1h" or "30s", or from a number of nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
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
	case nil:
		*d = 0
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
