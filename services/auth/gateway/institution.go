package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	httpclient "github.com/piresc/studentdeals/internal/pkg/http"
	"github.com/piresc/studentdeals/internal/pkg/models"
)

type studentLookupResponse struct {
	Found bool `json:"found"`
}

// InstitutionGateway calls per-institution student lookup APIs
type InstitutionGateway struct {
	client *httpclient.Client
}

// NewInstitutionGateway creates an institution lookup gateway
func NewInstitutionGateway(client *httpclient.Client) *InstitutionGateway {
	return &InstitutionGateway{client: client}
}

// LookupStudent asks the institution whether studentID is enrolled under email.
// An institution without a lookup URL yields models.ErrProviderNotConfigured.
func (g *InstitutionGateway) LookupStudent(ctx context.Context, inst *models.Institution, studentID, email string) (bool, error) {
	if inst.LookupURL == nil || *inst.LookupURL == "" {
		return false, models.ErrProviderNotConfigured
	}

	endpoint, err := url.Parse(*inst.LookupURL)
	if err != nil {
		return false, fmt.Errorf("invalid lookup url for institution %s: %w", inst.ID, err)
	}
	q := endpoint.Query()
	q.Set("student_id", studentID)
	q.Set("email", email)
	endpoint.RawQuery = q.Encode()

	headers := map[string]string{}
	if inst.APIKey != nil && *inst.APIKey != "" {
		headers["X-API-Key"] = *inst.APIKey
	}

	var resp studentLookupResponse
	if err := g.client.GetJSON(ctx, endpoint.String(), headers, &resp); err != nil {
		var httpErr *httpclient.HTTPError
		if errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusNotFound {
			return false, nil
		}
		return false, fmt.Errorf("student lookup at %s failed: %w", inst.ID, err)
	}

	return resp.Found, nil
}
