package tlsutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDisabledIsInsecure(t *testing.T) {
	server, err := ServerCredentials(ServerConfig{})
	if err != nil {
		t.Fatalf("ServerCredentials: %v", err)
	}
	if got := server.Info().SecurityProtocol; got != "insecure" {
		t.Fatalf("server protocol = %q, want insecure", got)
	}

	client, err := ClientCredentials(ClientConfig{})
	if err != nil {
		t.Fatalf("ClientCredentials: %v", err)
	}
	if got := client.Info().SecurityProtocol; got != "insecure" {
		t.Fatalf("client protocol = %q, want insecure", got)
	}
}

func TestGeneratedCertificatesLoad(t *testing.T) {
	certs, err := GenerateDevCertificates([]string{"localhost", "127.0.0.1"}, t.TempDir())
	if err != nil {
		t.Fatalf("GenerateDevCertificates: %v", err)
	}

	server, err := ServerCredentials(ServerConfig{CertFile: certs.CertFile, KeyFile: certs.KeyFile, ClientCAFile: certs.CAFile})
	if err != nil {
		t.Fatalf("ServerCredentials: %v", err)
	}
	if got := server.Info().SecurityProtocol; got != "tls" {
		t.Fatalf("server protocol = %q, want tls", got)
	}

	client, err := ClientCredentials(ClientConfig{Enabled: true, CAFile: certs.CAFile, ServerName: "localhost"})
	if err != nil {
		t.Fatalf("ClientCredentials: %v", err)
	}
	if got := client.Info().SecurityProtocol; got != "tls" {
		t.Fatalf("client protocol = %q, want tls", got)
	}
}

func TestCredentialErrors(t *testing.T) {
	dir := t.TempDir()
	garbage := filepath.Join(dir, "garbage.pem")
	if err := os.WriteFile(garbage, []byte("not a certificate"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		fn   func() error
	}{
		{"cert without key", func() error {
			_, err := ServerCredentials(ServerConfig{CertFile: garbage})
			return err
		}},
		{"unreadable pair", func() error {
			_, err := ServerCredentials(ServerConfig{CertFile: garbage, KeyFile: garbage})
			return err
		}},
		{"missing CA", func() error {
			_, err := ClientCredentials(ClientConfig{Enabled: true, CAFile: filepath.Join(dir, "nope.pem")})
			return err
		}},
		{"CA without certificates", func() error {
			_, err := ClientCredentials(ClientConfig{Enabled: true, CAFile: garbage})
			return err
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.fn(); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}
