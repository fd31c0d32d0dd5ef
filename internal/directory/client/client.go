// Package client provides the HTTP client for the remote contact directory.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"contact_sync_backend/internal/contacts/ports"
	"contact_sync_backend/internal/directory/transport"
	"contact_sync_backend/platform/apperr"
	"contact_sync_backend/platform/config"
	"contact_sync_backend/platform/logger"

	"github.com/sethvargo/go-retry"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

const (
	contactsV3Path  = "/crm/v3/objects/contacts"
	searchV3Path    = contactsV3Path + "/search"
	mergeV3Path     = contactsV3Path + "/merge"
	companiesV3Path = "/crm/v3/objects/companies"

	// profileURLProperty is the denormalized URL property the directory
	// indexes; external identifiers are matched against it, not stored raw.
	profileURLProperty = "linkedin_url"

	retryBaseDelay   = 250 * time.Millisecond
	urlVariantFanOut = 4
	companyFanOut    = 4
)

// profileURLTemplates cover every canonical form the denormalized URL
// property may hold: http/https with and without a trailing slash.
var profileURLTemplates = []string{
	"https://www.linkedin.com/in/%s",
	"https://www.linkedin.com/in/%s/",
	"http://www.linkedin.com/in/%s",
	"http://www.linkedin.com/in/%s/",
}

// Client implements ports.Directory against a HubSpot-shaped API. All calls
// pass through a shared rate limiter; reads additionally retry with bounded
// exponential backoff on network errors and 5xx responses. Writes are never
// retried.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	limiter    *rate.Limiter
	retryMax   int
	log        *logger.Logger
}

// New creates a directory client from configuration.
func New(cfg config.DirectoryConfig, log *logger.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.GetHTTPTimeout()},
		baseURL:    cfg.GetDirectoryBaseURL(),
		apiKey:     cfg.GetDirectoryAPIKey(),
		limiter:    rate.NewLimiter(rate.Limit(cfg.GetDirectoryRateLimit()), 1),
		retryMax:   cfg.GetRetryMaxAttempts(),
		log:        log,
	}
}

var _ ports.Directory = (*Client)(nil)

// SearchByEmail looks the address up through the legacy profile endpoint,
// which matches both primary and secondary emails. Not-found is an empty
// result, not an error.
func (c *Client) SearchByEmail(ctx context.Context, email string) ([]string, error) {
	normalized := strings.TrimRight(strings.ToLower(strings.TrimSpace(email)), ".")
	if normalized == "" {
		return nil, nil
	}

	path := fmt.Sprintf("/contacts/v1/contact/email/%s/profile", url.PathEscape(normalized))
	status, body, err := c.doRead(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, apperr.Transient("email search failed", err).WithOp("search_by_email")
	}
	if status == http.StatusNotFound {
		return nil, nil
	}
	if status != http.StatusOK {
		return nil, apperr.Transient(fmt.Sprintf("email search status %d", status), nil).WithOp("search_by_email")
	}

	var profile transport.LegacyProfileResponse
	if err := json.Unmarshal(body, &profile); err != nil {
		return nil, apperr.Transient("email search decode failed", err).WithOp("search_by_email")
	}
	if vid := profile.Vid.String(); vid != "" && vid != "0" {
		return []string{vid}, nil
	}
	return nil, nil
}

// SearchByExternalID matches the identifier against every canonical profile
// URL form and unions the results. The four variant searches fan out.
func (c *Client) SearchByExternalID(ctx context.Context, idValue string) ([]string, error) {
	var mu sync.Mutex
	var all []string

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(urlVariantFanOut)
	for _, template := range profileURLTemplates {
		template := template
		g.Go(func() error {
			ids, err := c.searchContacts(gctx, transport.SearchRequest{
				FilterGroups: []transport.SearchFilterGroup{{
					Filters: []transport.SearchFilter{{
						PropertyName: profileURLProperty,
						Operator:     "EQ",
						Value:        fmt.Sprintf(template, idValue),
					}},
				}},
				Properties: []string{profileURLProperty},
			})
			if err != nil {
				return err
			}
			mu.Lock()
			all = append(all, ids...)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, apperr.Transient("external id search failed", err).WithOp("search_by_external_id")
	}

	seen := make(map[string]struct{}, len(all))
	unique := make([]string, 0, len(all))
	for _, id := range all {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique, nil
}

// SearchByName runs an exact first/last name search.
func (c *Client) SearchByName(ctx context.Context, firstName, lastName string) ([]string, error) {
	ids, err := c.searchContacts(ctx, transport.SearchRequest{
		FilterGroups: []transport.SearchFilterGroup{{
			Filters: []transport.SearchFilter{
				{PropertyName: "firstname", Operator: "EQ", Value: firstName},
				{PropertyName: "lastname", Operator: "EQ", Value: lastName},
			},
		}},
		Properties: []string{"firstname", "lastname"},
	})
	if err != nil {
		return nil, apperr.Transient("name search failed", err).WithOp("search_by_name")
	}
	return ids, nil
}

// GetAssociatedCompanyNames walks the contact's company associations and
// returns the trimmed, lower-cased company names. A single company fetch
// failing drops that name, not the whole lookup.
func (c *Client) GetAssociatedCompanyNames(ctx context.Context, id string) (map[string]struct{}, error) {
	path := fmt.Sprintf("%s/%s/associations/companies", contactsV3Path, url.PathEscape(id))
	status, body, err := c.doRead(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, apperr.Transient("association lookup failed", err).WithOp("get_associated_company_names")
	}
	if status != http.StatusOK {
		return nil, apperr.Transient(fmt.Sprintf("association lookup status %d", status), nil).WithOp("get_associated_company_names")
	}

	var associations transport.SearchResponse
	if err := json.Unmarshal(body, &associations); err != nil {
		return nil, apperr.Transient("association decode failed", err).WithOp("get_associated_company_names")
	}

	var mu sync.Mutex
	names := make(map[string]struct{})

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(companyFanOut)
	for _, result := range associations.Results {
		companyID := result.ID
		if companyID == "" {
			continue
		}
		g.Go(func() error {
			name, err := c.fetchCompanyName(gctx, companyID)
			if err != nil {
				c.log.DirectoryError("fetch_company_name", err)
				return nil
			}
			if name != "" {
				mu.Lock()
				names[name] = struct{}{}
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	return names, nil
}

func (c *Client) fetchCompanyName(ctx context.Context, companyID string) (string, error) {
	path := fmt.Sprintf("%s/%s?properties=name", companiesV3Path, url.PathEscape(companyID))
	status, body, err := c.doRead(ctx, http.MethodGet, path, nil)
	if err != nil {
		return "", err
	}
	if status != http.StatusOK {
		return "", fmt.Errorf("company fetch status %d", status)
	}

	var company transport.ContactResponse
	if err := json.Unmarshal(body, &company); err != nil {
		return "", err
	}
	return strings.ToLower(strings.TrimSpace(company.Properties["name"])), nil
}

// Fetch returns the entry's current properties.
func (c *Client) Fetch(ctx context.Context, id string) (map[string]string, error) {
	path := fmt.Sprintf("%s/%s", contactsV3Path, url.PathEscape(id))
	status, body, err := c.doRead(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, apperr.Transient("fetch failed", err).WithOp("fetch")
	}
	if status == http.StatusNotFound {
		return nil, apperr.NotFound("directory entry not found").WithOp("fetch")
	}
	if status != http.StatusOK {
		return nil, apperr.Transient(fmt.Sprintf("fetch status %d", status), nil).WithOp("fetch")
	}

	var contact transport.ContactResponse
	if err := json.Unmarshal(body, &contact); err != nil {
		return nil, apperr.Transient("fetch decode failed", err).WithOp("fetch")
	}
	if contact.Properties == nil {
		return map[string]string{}, nil
	}
	return contact.Properties, nil
}

// Create registers a new entry and returns its assigned ID.
func (c *Client) Create(ctx context.Context, properties map[string]string) (string, error) {
	status, body, err := c.do(ctx, http.MethodPost, contactsV3Path, transport.ContactRequest{Properties: properties})
	if err != nil {
		return "", apperr.Rejected("create failed", err).WithOp("create")
	}
	if status != http.StatusCreated && status != http.StatusOK {
		return "", apperr.Rejected(fmt.Sprintf("create status %d", status), nil).
			WithOp("create").WithDetails(string(body))
	}

	var contact transport.ContactResponse
	if err := json.Unmarshal(body, &contact); err != nil {
		return "", apperr.Rejected("create decode failed", err).WithOp("create")
	}
	if contact.ID == "" {
		return "", apperr.Rejected("create returned no id", nil).WithOp("create").WithDetails(string(body))
	}
	return contact.ID, nil
}

// Update applies a property delta and returns the applied properties.
func (c *Client) Update(ctx context.Context, id string, properties map[string]string) (map[string]string, error) {
	path := fmt.Sprintf("%s/%s", contactsV3Path, url.PathEscape(id))
	status, body, err := c.do(ctx, http.MethodPatch, path, transport.ContactRequest{Properties: properties})
	if err != nil {
		return nil, apperr.Rejected("update failed", err).WithOp("update")
	}
	if status != http.StatusOK {
		return nil, apperr.Rejected(fmt.Sprintf("update status %d", status), nil).
			WithOp("update").WithDetails(string(body))
	}

	var contact transport.ContactResponse
	if err := json.Unmarshal(body, &contact); err != nil {
		return nil, apperr.Rejected("update decode failed", err).WithOp("update")
	}
	return contact.Properties, nil
}

// Merge collapses toMergeID into primaryID. The resulting canonical ID is
// whatever the service reports, falling back to primaryID when the response
// omits it.
func (c *Client) Merge(ctx context.Context, toMergeID, primaryID string) (string, error) {
	status, body, err := c.do(ctx, http.MethodPost, mergeV3Path, transport.MergeRequest{
		ObjectIDToMerge: toMergeID,
		PrimaryObjectID: primaryID,
	})
	if err != nil {
		return "", apperr.Rejected("merge failed", err).WithOp("merge")
	}
	if status != http.StatusOK && status != http.StatusCreated {
		return "", apperr.Rejected(fmt.Sprintf("merge status %d", status), nil).
			WithOp("merge").WithDetails(string(body))
	}

	var merged transport.MergeResponse
	if err := json.Unmarshal(body, &merged); err != nil {
		return "", apperr.Rejected("merge decode failed", err).WithOp("merge")
	}
	switch {
	case merged.ID != "":
		return merged.ID, nil
	case merged.PrimaryObjectID != "":
		return merged.PrimaryObjectID, nil
	default:
		return primaryID, nil
	}
}

// ListEmails returns every address registered on the entry, lower-cased.
func (c *Client) ListEmails(ctx context.Context, id string) (map[string]struct{}, error) {
	path := fmt.Sprintf("/contacts/v1/contact/vid/%s/profile", url.PathEscape(id))
	status, body, err := c.doRead(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, apperr.Transient("email listing failed", err).WithOp("list_emails")
	}
	if status != http.StatusOK {
		return nil, apperr.Transient(fmt.Sprintf("email listing status %d", status), nil).WithOp("list_emails")
	}

	var profile transport.LegacyProfileResponse
	if err := json.Unmarshal(body, &profile); err != nil {
		return nil, apperr.Transient("email listing decode failed", err).WithOp("list_emails")
	}

	emails := make(map[string]struct{})
	for _, identityProfile := range profile.IdentityProfiles {
		for _, identity := range identityProfile.Identities {
			if identity.Type == "EMAIL" && identity.Value != "" {
				emails[strings.ToLower(identity.Value)] = struct{}{}
			}
		}
	}
	return emails, nil
}

// AddSecondaryEmail registers an alternate address. A 400 response is the
// distinguished "must be primary" rejection.
func (c *Client) AddSecondaryEmail(ctx context.Context, id, email string) error {
	path := fmt.Sprintf("/contacts/v1/secondary-email/%s/email/%s", url.PathEscape(id), url.PathEscape(email))
	status, body, err := c.do(ctx, http.MethodPut, path, transport.LegacyUpdateRequest{
		Properties: []transport.LegacyProperty{{Property: "email", Value: email}},
	})
	if err != nil {
		return apperr.Rejected("secondary email call failed", err).WithOp("add_secondary_email")
	}
	if status == http.StatusBadRequest {
		return fmt.Errorf("%w: %s", ports.ErrSecondaryRejected, email)
	}
	if status/100 != 2 {
		return apperr.Rejected(fmt.Sprintf("secondary email status %d", status), nil).
			WithOp("add_secondary_email").WithDetails(string(body))
	}
	return nil
}

// SetPrimaryEmail replaces the entry's primary address via the legacy
// profile-update endpoint.
func (c *Client) SetPrimaryEmail(ctx context.Context, id, email string) error {
	path := fmt.Sprintf("/contacts/v1/contact/vid/%s/profile", url.PathEscape(id))
	status, body, err := c.do(ctx, http.MethodPost, path, transport.LegacyUpdateRequest{
		Properties: []transport.LegacyProperty{{Property: "email", Value: email}},
	})
	if err != nil {
		return apperr.Rejected("primary email call failed", err).WithOp("set_primary_email")
	}
	if status/100 != 2 {
		return apperr.Rejected(fmt.Sprintf("primary email status %d", status), nil).
			WithOp("set_primary_email").WithDetails(string(body))
	}
	return nil
}

func (c *Client) searchContacts(ctx context.Context, request transport.SearchRequest) ([]string, error) {
	status, body, err := c.doRead(ctx, http.MethodPost, searchV3Path, request)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("search status %d", status)
	}

	var response transport.SearchResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(response.Results))
	for _, result := range response.Results {
		if result.ID != "" {
			ids = append(ids, result.ID)
		}
	}
	return ids, nil
}

// do executes one request with rate limiting and bearer auth, returning the
// status code and the full response body.
func (c *Client) do(ctx context.Context, method, path string, body any) (int, []byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return 0, nil, err
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return 0, nil, err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}

	c.log.DirectoryCall(method+" "+path, resp.StatusCode, float64(time.Since(start).Milliseconds()))
	return resp.StatusCode, data, nil
}

// doRead wraps do with bounded exponential backoff for idempotent reads.
// Network errors and 5xx responses are retried; 4xx responses are not.
func (c *Client) doRead(ctx context.Context, method, path string, body any) (int, []byte, error) {
	var status int
	var data []byte

	retries := c.retryMax - 1
	if retries < 0 {
		retries = 0
	}
	backoff := retry.WithMaxRetries(uint64(retries), retry.NewExponential(retryBaseDelay))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		var err error
		status, data, err = c.do(ctx, method, path, body)
		if err != nil {
			return retry.RetryableError(err)
		}
		if status >= http.StatusInternalServerError {
			return retry.RetryableError(fmt.Errorf("directory status %d", status))
		}
		return nil
	})
	return status, data, err
}
