package service

// directFields are copied verbatim (trimmed) when present, non-blank, and
// different from the entry's current value.
var directFields = []string{
	"industry",
	"birthday",
	"education_start_1",
}

// fieldAlias maps one source field to one destination property. The table is
// an ordered slice rather than a map because several source keys legitimately
// feed more than one destination (profile_url, current_company_position,
// organization_url_1); a single-valued lookup would silently shadow the
// earlier entry.
type fieldAlias struct {
	source string
	dest   string
}

var fieldAliases = []fieldAlias{
	{"first_name", "firstname"},
	{"last_name", "lastname"},
	{"mobile", "mobilephone"},
	{"organization_url_1", "website"},
	{"member_id", "linkedin_member_id"},
	{"hash_id", "linkedin_hash_id"},
	{"sn_hash_id", "linkedin_sn_hash_id"},
	{"lh_id", "linkedhelper_crm_id"},
	{"profile_url", "linkedin_url"},
	{"profile_url", "linkedin"},
	{"headline", "linkedin_headline"},
	{"location_name", "linkedin_location_name"},
	{"summary", "lh_summary"},
	{"badges_premium", "linkedin_premium_badge"},
	{"badges_influencer", "linkedin_influencer_badge"},
	{"badges_job_seeker", "lh_badgesjobseeker"},
	{"badges_open_link", "linkedin_open_badge"},
	{"badges_hiring", "lh_badgeshiring"},
	{"current_company", "company"},
	{"current_company_position", "jobtitle"},
	{"current_company_position", "linkedin_title"},
	{"organization_1", "company"},
	{"organization_id_1", "organization_li_id_1"},
	{"organization_url_1", "organization_li_url_1"},
	{"organization_title_1", "organization_title_1"},
	{"organization_start_1", "organization_start_1"},
	{"organization_end_1", "organization_end_1"},
	{"organization_description_1", "organization_description_1"},
	{"organization_location_1", "organization_location_1"},
	{"organization_website_1", "organization_website_1"},
	{"organization_domain_1", "organization_domain_1"},
	{"education_1", "linkedin_education"},
	{"education_end_1", "linkedin_education_end"},
	{"language_1", "hs_language"},
	{"skills", "linkedin_skills"},
	{"twitters", "lh_twitter"},
	{"website_1", "website"},
	{"website_2", "personal_website_1"},
	{"tags", "lh_tags"},
	{"connected_at", "linkedin_connected_at"},
	{"mutual_count", "linkedin_mutual_count"},
	{"followers", "linkedin_followers"},
	{"connections_count", "linkedinconnections"},
	{"member_distance", "lh_member_distance"},
}

// badgeProperties are destination properties treated as booleans: recognized
// truthy/falsy tokens canonicalize to "true"/"false", anything else passes
// through as an opaque literal.
var badgeProperties = map[string]struct{}{
	"linkedin_premium_badge":    {},
	"linkedin_influencer_badge": {},
	"lh_badgesjobseeker":        {},
	"linkedin_open_badge":       {},
	"lh_badgeshiring":           {},
}
