package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"slack-charity-donate/internal/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

const minimal = `
server:
  public_url: https://donate.example.com/
slack:
  bot_token: xoxb-secret
stripe:
  secret_key: sk_test_abc
  publishable_key: pk_test_abc
`

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := config.LoadConfig(writeConfig(t, minimal), false)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Fatalf("port = %d", cfg.Server.Port)
	}
	if cfg.Server.CallTimeout != 10*time.Second {
		t.Fatalf("call timeout = %v", cfg.Server.CallTimeout)
	}
	if cfg.Server.PublicURL != "https://donate.example.com" {
		t.Fatalf("public url %q must lose its trailing slash", cfg.Server.PublicURL)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "json" {
		t.Fatalf("log defaults = %+v", cfg.Log)
	}
	if cfg.Slack.APIBaseURL != "https://slack.com/api" {
		t.Fatalf("slack base = %q", cfg.Slack.APIBaseURL)
	}
	if cfg.Slack.ShortcutCallbackID != "ryman_charity_donate" {
		t.Fatalf("shortcut id = %q", cfg.Slack.ShortcutCallbackID)
	}
	if cfg.Stripe.Currency != "nzd" {
		t.Fatalf("currency = %q", cfg.Stripe.Currency)
	}
	if cfg.Runtime.Dev {
		t.Fatal("dev must default off")
	}
}

func TestLoadConfigRequiredFields(t *testing.T) {
	cases := map[string]string{
		"missing slack token": `
server: {public_url: https://x}
stripe: {secret_key: sk, publishable_key: pk}
`,
		"missing stripe secret": `
server: {public_url: https://x}
slack: {bot_token: xoxb}
stripe: {publishable_key: pk}
`,
		"missing publishable key": `
server: {public_url: https://x}
slack: {bot_token: xoxb}
stripe: {secret_key: sk}
`,
		"missing public url": `
slack: {bot_token: xoxb}
stripe: {secret_key: sk, publishable_key: pk}
`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := config.LoadConfig(writeConfig(t, body), false); err == nil {
				t.Fatal("want error")
			}
		})
	}
}

func TestLoadConfigBadFile(t *testing.T) {
	if _, err := config.LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"), false); err == nil {
		t.Fatal("want error for missing file")
	}
	if _, err := config.LoadConfig(writeConfig(t, "\t:not yaml"), false); err == nil {
		t.Fatal("want error for unparseable yaml")
	}
}
