package credentials

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/oauth2/google"
)

const serviceAccountType = "service_account"

// Scopes requested for the document store.
var Scopes = []string{
	"https://www.googleapis.com/auth/cloud-platform",
	"https://www.googleapis.com/auth/datastore",
}

// ServiceAccount is a parsed service-account key. Only the fields the
// publisher depends on are typed; the raw key is kept for token exchange.
type ServiceAccount struct {
	Type         string `json:"type"`
	ProjectID    string `json:"project_id"`
	PrivateKeyID string `json:"private_key_id"`
	PrivateKey   string `json:"private_key"`
	ClientEmail  string `json:"client_email"`
	ClientID     string `json:"client_id"`
	TokenURI     string `json:"token_uri"`

	raw []byte
}

// Parse decodes and validates a service-account key.
func Parse(data []byte) (*ServiceAccount, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, errors.New("service account key is empty")
	}

	var sa ServiceAccount
	if err := json.Unmarshal(data, &sa); err != nil {
		return nil, errors.Wrap(err, "service account key is not valid JSON")
	}
	if err := sa.validate(); err != nil {
		return nil, err
	}
	sa.raw = append([]byte(nil), data...)
	return &sa, nil
}

func (s *ServiceAccount) validate() error {
	if s.Type != serviceAccountType {
		return errors.Errorf("service account key has type %q, want %q", s.Type, serviceAccountType)
	}
	missing := []string{}
	if s.ProjectID == "" {
		missing = append(missing, "project_id")
	}
	if s.ClientEmail == "" {
		missing = append(missing, "client_email")
	}
	if s.PrivateKey == "" {
		missing = append(missing, "private_key")
	}
	if len(missing) > 0 {
		return errors.Errorf("service account key is missing %s", strings.Join(missing, ", "))
	}
	return nil
}

// Credentials exchanges the key for Google credentials scoped to the store.
func (s *ServiceAccount) Credentials(ctx context.Context) (*google.Credentials, error) {
	creds, err := google.CredentialsFromJSON(ctx, s.raw, Scopes...)
	if err != nil {
		return nil, errors.Wrapf(err, "loading credentials for %s", s.ClientEmail)
	}
	return creds, nil
}
