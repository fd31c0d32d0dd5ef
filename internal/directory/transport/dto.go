// Package transport defines the wire types for the contact directory API,
// covering both the v3 object endpoints and the legacy v1 email endpoints.
package transport

import "encoding/json"

// SearchFilter is one EQ-style property filter.
type SearchFilter struct {
	PropertyName string `json:"propertyName"`
	Operator     string `json:"operator"`
	Value        string `json:"value"`
}

// SearchFilterGroup ANDs its filters together.
type SearchFilterGroup struct {
	Filters []SearchFilter `json:"filters"`
}

// SearchRequest is the body of a v3 object search.
type SearchRequest struct {
	FilterGroups []SearchFilterGroup `json:"filterGroups"`
	Properties   []string            `json:"properties,omitempty"`
}

// SearchResult carries the matched object's ID.
type SearchResult struct {
	ID string `json:"id"`
}

// SearchResponse is the body of a v3 search response. The same shape serves
// association listings.
type SearchResponse struct {
	Results []SearchResult `json:"results"`
}

// ContactRequest is the body of a v3 create or update call.
type ContactRequest struct {
	Properties map[string]string `json:"properties"`
}

// ContactResponse is a v3 contact object. Null property values decode to
// blank strings.
type ContactResponse struct {
	ID         string            `json:"id"`
	Properties map[string]string `json:"properties"`
}

// MergeRequest merges one contact into a primary.
type MergeRequest struct {
	ObjectIDToMerge string `json:"objectIdToMerge"`
	PrimaryObjectID string `json:"primaryObjectId"`
}

// MergeResponse reports the contact that survived a merge. The service may
// assign an ID distinct from both inputs.
type MergeResponse struct {
	ID              string `json:"id"`
	PrimaryObjectID string `json:"primaryObjectId"`
}

// LegacyIdentity is one identity entry on a legacy v1 profile.
type LegacyIdentity struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// LegacyIdentityProfile groups the identities registered on a contact.
type LegacyIdentityProfile struct {
	Identities []LegacyIdentity `json:"identities"`
}

// LegacyProfileResponse is the legacy v1 contact profile. vid arrives as a
// number.
type LegacyProfileResponse struct {
	Vid              json.Number             `json:"vid"`
	IdentityProfiles []LegacyIdentityProfile `json:"identity-profiles"`
}

// LegacyProperty is one property assignment in a legacy v1 update.
type LegacyProperty struct {
	Property string `json:"property"`
	Value    string `json:"value"`
}

// LegacyUpdateRequest is the body of a legacy v1 profile update.
type LegacyUpdateRequest struct {
	Properties []LegacyProperty `json:"properties"`
}
