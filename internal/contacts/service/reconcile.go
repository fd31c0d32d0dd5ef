package service

import (
	"strings"

	"contact_sync_backend/internal/contacts/domain"
	"contact_sync_backend/platform/phone"
)

const (
	defaultCountry = "United States"
	areaSuffix     = "area"
	secureScheme   = "https://"

	legacySalesPrefix      = "https://www.linkedin.com/sales/people"
	canonicalProfilePrefix = "https://www.linkedin.com/in"

	publicIDMarker = "public-id"
)

// Reconcile computes the property delta between the record and the entry's
// current state. Pure: no I/O, deterministic apart from the static language
// index. Every rule degrades to "no change" on missing or malformed input,
// and a key is only emitted when its computed value differs from current.
func Reconcile(current map[string]string, record domain.SourceRecord) domain.UpdatePlan {
	plan := make(domain.UpdatePlan)

	reconcilePhone(plan, current, record)
	reconcileEducation(plan, current, record)
	reconcileLocation(plan, current, record)
	reconcileDirectFields(plan, current, record)
	reconcileAliases(plan, current, record)
	reconcilePublicID(plan, current, record)
	reconcileEmails(plan, current, record)
	reconcileProfileURL(plan, current, record)

	return plan
}

func setIfChanged(plan domain.UpdatePlan, current map[string]string, key, value string) {
	if current[key] != value {
		plan[key] = value
	}
}

// reconcilePhone routes the record's single phone value to the destination
// selected by its type tag. Unrecognized type tags are dropped silently.
// Values are normalized to E.164 where they parse; unparseable values pass
// through trimmed.
func reconcilePhone(plan domain.UpdatePlan, current map[string]string, record domain.SourceRecord) {
	value := strings.TrimSpace(record.Get("phone_1"))
	if value == "" {
		return
	}
	value = phone.NormalizeE164(value)

	switch strings.ToUpper(strings.TrimSpace(record.Get("phone_type_1"))) {
	case "WORK":
		setIfChanged(plan, current, "phone", value)
	case "HOME":
		setIfChanged(plan, current, "home_phone", value)
	case "MOBILE":
		setIfChanged(plan, current, "mobilephone", value)
	}
}

// reconcileEducation synthesizes the education description from the degree
// and field-of-study columns, space-joined, skipping blanks.
func reconcileEducation(plan domain.UpdatePlan, current map[string]string, record domain.SourceRecord) {
	degree := strings.TrimSpace(record.Get("education_degree_1"))
	fos := strings.TrimSpace(record.Get("education_fos_1"))
	if degree == "" && fos == "" {
		return
	}

	parts := make([]string, 0, 2)
	if degree != "" {
		parts = append(parts, degree)
	}
	if fos != "" {
		parts = append(parts, fos)
	}
	setIfChanged(plan, current, "education_description_1", strings.Join(parts, " "))
}

// reconcileLocation decomposes the free-text location string into up to
// city, state, and country. A two-part location whose state token carries the
// "Area" suffix follows a US-centric region-labeling style: the suffix is
// stripped and the country defaults to United States.
func reconcileLocation(plan domain.UpdatePlan, current map[string]string, record domain.SourceRecord) {
	location := record.Get("location_name")
	if location == "" {
		return
	}

	parts := make([]string, 0, 3)
	for _, part := range strings.Split(location, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}

	switch len(parts) {
	case 3:
		setIfChanged(plan, current, "city", parts[0])
		setIfChanged(plan, current, "state", parts[1])
		setIfChanged(plan, current, "country", parts[2])
	case 2:
		setIfChanged(plan, current, "city", parts[0])
		state := parts[1]
		if strings.HasSuffix(strings.ToLower(state), areaSuffix) {
			state = strings.TrimSpace(state[:len(state)-len(areaSuffix)])
		}
		if state != "" && current["state"] != state {
			plan["state"] = state
			setIfChanged(plan, current, "country", defaultCountry)
		}
	case 1:
		setIfChanged(plan, current, "city", parts[0])
	}
}

func reconcileDirectFields(plan domain.UpdatePlan, current map[string]string, record domain.SourceRecord) {
	for _, field := range directFields {
		value := strings.TrimSpace(record.Get(field))
		if value == "" {
			continue
		}
		setIfChanged(plan, current, field, value)
	}
}

// reconcileAliases walks the ordered alias table. Duplicate source keys feed
// each of their destinations in turn; within the plan a later pair for the
// same destination overwrites an earlier one, as the source data intends.
func reconcileAliases(plan domain.UpdatePlan, current map[string]string, record domain.SourceRecord) {
	for _, alias := range fieldAliases {
		raw := record.Get(alias.source)
		if strings.TrimSpace(raw) == "" {
			continue
		}

		if alias.dest == "hs_language" {
			if code, ok := languageCode(raw); ok {
				setIfChanged(plan, current, "hs_language", code)
			}
			// Unknown labels are dropped silently.
			continue
		}

		value := raw
		if alias.source == "organization_website_1" {
			value = normalizeWebsiteURL(raw)
		}
		if _, isBadge := badgeProperties[alias.dest]; isBadge {
			value = normalizeBadge(raw)
		}

		// Company is first-write-wins: never clobber a curated value.
		if alias.dest == "company" && strings.TrimSpace(current["company"]) != "" {
			continue
		}

		setIfChanged(plan, current, alias.dest, value)
	}
}

// normalizeBadge canonicalizes boolean-like tokens and passes anything else
// through as an opaque literal.
func normalizeBadge(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1", "yes", "y":
		return "true"
	case "false", "0", "no", "n":
		return "false"
	default:
		return strings.TrimSpace(raw)
	}
}

// normalizeWebsiteURL repairs malformed "scheme:path" fragments in the
// organization website column. With a colon present, everything after the
// last colon (leading slashes and whitespace stripped) is re-prefixed with
// the secure scheme; without one, bare hosts gain the scheme.
func normalizeWebsiteURL(raw string) string {
	value := strings.TrimSpace(raw)
	if value == "" {
		return value
	}

	if idx := strings.LastIndex(value, ":"); idx >= 0 {
		part := strings.TrimSpace(strings.TrimLeft(value[idx+1:], "/"))
		if part == "" {
			return secureScheme
		}
		return secureScheme + part
	}
	if !strings.HasPrefix(strings.ToLower(value), "http") {
		return secureScheme + value
	}
	return value
}

// reconcilePublicID links the external user ID when the record's ID-type tag
// is the public-id marker.
func reconcilePublicID(plan domain.UpdatePlan, current map[string]string, record domain.SourceRecord) {
	id := record.Get(fieldExternalID)
	if id == "" {
		return
	}
	if strings.ToLower(strings.TrimSpace(record.Get("id_type"))) != publicIDMarker {
		return
	}
	setIfChanged(plan, current, "linkedin_user_id", id)
}

// reconcileEmails joins the record's primary and third-party addresses with
// commas in the order encountered. De-duplication and the letter-suffix
// filter happen downstream once resolver-discovered emails are merged in.
func reconcileEmails(plan domain.UpdatePlan, current map[string]string, record domain.SourceRecord) {
	fields := []string{"email", "third_party_email_1", "third_party_email_2", "third_party_email_3"}
	emails := make([]string, 0, len(fields))
	for _, field := range fields {
		if value := strings.TrimSpace(record.Get(field)); value != "" {
			emails = append(emails, value)
		}
	}
	if len(emails) == 0 {
		return
	}
	setIfChanged(plan, current, "email", strings.Join(emails, ","))
}

// reconcileProfileURL owns the canonical profile-URL property. A blank or
// legacy-sales current value is replaced from the source URL, rewriting the
// legacy prefix to the canonical /in form and truncating at the first comma;
// an already-canonical value is only overwritten by a non-blank source URL.
func reconcileProfileURL(plan domain.UpdatePlan, current map[string]string, record domain.SourceRecord) {
	profileURL := record.Get("profile_url")
	currentURL := current["linkedin_url"]

	if currentURL == "" || strings.HasPrefix(currentURL, legacySalesPrefix) {
		switch {
		case strings.HasPrefix(profileURL, legacySalesPrefix):
			rewritten := canonicalProfilePrefix + strings.TrimPrefix(profileURL, legacySalesPrefix)
			if idx := strings.Index(rewritten, ","); idx >= 0 {
				rewritten = rewritten[:idx]
			}
			assignProfileURL(plan, current, rewritten)
		case profileURL != "":
			assignProfileURL(plan, current, profileURL)
		}
		return
	}

	if strings.TrimSpace(profileURL) != "" {
		assignProfileURL(plan, current, profileURL)
	}
}

// assignProfileURL sets the canonical URL, superseding whatever the alias
// pass staged for the same destination; an unchanged value is suppressed.
func assignProfileURL(plan domain.UpdatePlan, current map[string]string, value string) {
	if current["linkedin_url"] == value {
		delete(plan, "linkedin_url")
		return
	}
	plan["linkedin_url"] = value
}
