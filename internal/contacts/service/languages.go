package service

import "strings"

// languagePair associates a human-readable language label with the directory's
// internal language code. Both the label and the code are indexed so lookups
// work from either form.
type languagePair struct {
	label string
	code  string
}

var languagePairs = []languagePair{
	{"Afrikaans", "af"},
	{"Albanian", "sq"},
	{"Albanian - Albania", "sq-al"},
	{"Arabic", "ar"},
	{"Arabic - Algeria", "ar-dz"},
	{"Arabic - Bahrain", "ar-bh"},
	{"Arabic - Egypt", "ar-eg"},
	{"Arabic - Iraq", "ar-iq"},
	{"Arabic - Jordan", "ar-jo"},
	{"Arabic - Kuwait", "ar-kw"},
	{"Arabic - Lebanon", "ar-lb"},
	{"Arabic - Libya", "ar-ly"},
	{"Arabic - Morocco", "ar-ma"},
	{"Arabic - Oman", "ar-om"},
	{"Arabic - Qatar", "ar-qa"},
	{"Arabic - Saudi Arabia", "ar-sa"},
	{"Arabic - Sudan", "ar-sd"},
	{"Arabic - Syria", "ar-sy"},
	{"Arabic - Tunisia", "ar-tn"},
	{"Arabic - United Arab Emirates", "ar-ae"},
	{"Arabic - Yemen", "ar-ye"},
	{"Armenian", "hy"},
	{"Assamese", "as"},
	{"Azerbaijani", "az"},
	{"Basque", "eu"},
	{"Belarusian", "be"},
	{"Belarusian - Belarus", "be-by"},
	{"Bengali", "bn"},
	{"Bosnian", "ba"},
	{"Bulgarian", "bg"},
	{"Bulgarian - Bulgaria", "bg-bg"},
	{"Burmese", "my"},
	{"Burmese - Myanmar (Burma)", "my-mm"},
	{"Catalan", "ca"},
	{"Catalan - Catalan", "ca-es"},
	{"Cebuano - Philippines", "cb-pl"},
	{"Chinese", "zh"},
	{"Chinese - China", "zh-cn"},
	{"Chinese - Hong Kong SAR", "zh-hk"},
	{"Chinese - Macau SAR", "zh-mo"},
	{"Chinese - Singapore", "zh-sg"},
	{"Chinese - Taiwan", "zh-tw"},
	{"Chinese (Simplified)", "zh-chs"},
	{"Chinese (Traditional)", "zh-cht"},
	{"Croatian", "hr"},
	{"Croatian - Croatia", "hr-hr"},
	{"Czech", "cs"},
	{"Czech - Czech Republic", "cs-cz"},
	{"Danish", "da"},
	{"Danish - Denmark", "da-dk"},
	{"Dutch", "nl"},
	{"Dutch - Belgium", "nl-be"},
	{"Dutch - The Netherlands", "nl-nl"},
	{"English", "en"},
	{"English - Australia", "en-au"},
	{"English - Canada", "en-ca"},
	{"English - Hong Kong", "en-hk"},
	{"English - India", "en-in"},
	{"English - Ireland", "en-ie"},
	{"English - Malaysia", "en-my"},
	{"English - Malta", "en-mt"},
	{"English - New Zealand", "en-nz"},
	{"English - Philippines", "en-ph"},
	{"English - Singapore", "en-sg"},
	{"English - South Africa", "en-za"},
	{"English - United Kingdom", "en-gb"},
	{"English - United States", "en-us"},
	{"English - Zimbabwe", "en-zw"},
	{"Estonian", "et"},
	{"Estonian - Estonia", "et-ee"},
	{"Faroese", "fo"},
	{"Farsi", "fa"},
	{"Finnish", "fi"},
	{"Finnish - Finland", "fi-fi"},
	{"French", "fr"},
	{"French - Belgium", "fr-be"},
	{"French - Canada", "fr-ca"},
	{"French - France", "fr-fr"},
	{"French - Luxembourg", "fr-lu"},
	{"French - Monaco", "fr-mc"},
	{"French - Switzerland", "fr-ch"},
	{"Galician", "gl"},
	{"Georgian", "ka"},
	{"German", "de"},
	{"German - Austria", "de-at"},
	{"German - Germany", "de-de"},
	{"German - Greece", "de-gr"},
	{"German - Liechtenstein", "de-li"},
	{"German - Luxembourg", "de-lu"},
	{"German - Switzerland", "de-ch"},
	{"Greek", "el"},
	{"Greek - Cyprus", "el-cy"},
	{"Greek - Greece", "el-gr"},
	{"Gujarati", "gu"},
	{"Haitian Creole", "ht"},
	{"Hausa", "ha"},
	{"Hebrew", "he"},
	{"Hebrew - Israel", "he-il"},
	{"Hebrew - Israel (Legacy)", "iw-il"},
	{"Hindi", "hi"},
	{"Hindi - India", "hi-in"},
	{"Hungarian", "hu"},
	{"Hungarian - Hungary", "hu-hu"},
	{"Icelandic", "is"},
	{"Icelandic - Iceland", "is-is"},
	{"Indonesian", "id"},
	{"Indonesian - Indonesia", "in-id"},
	{"Irish", "ga"},
	{"Irish - Ireland", "ga-ie"},
	{"Italian", "it"},
	{"Italian - Italy", "it-it"},
	{"Italian - Switzerland", "it-ch"},
	{"Japanese", "ja"},
	{"Japanese - Japan", "ja-jp"},
	{"Kannada", "kn"},
	{"Kazakh", "kk"},
	{"Kinyarwanda", "rw"},
	{"Kiswahili", "ki"},
	{"Konkani", "kok"},
	{"Korean", "ko"},
	{"Korean - South Korea", "ko-kr"},
	{"Kurdish", "ku"},
	{"Kyrgyz", "ky"},
	{"Lao", "lo"},
	{"Latvian", "lv"},
	{"Latvian - Latvia", "lv-lv"},
	{"Lithuanian", "lt"},
	{"Lithuanian - Lithuania", "lt-lt"},
	{"Macedonian", "mk"},
	{"Macedonian - Macedonia", "mk-mk"},
	{"Malagasy", "mg"},
	{"Malay", "ms"},
	{"Malayalam", "m1"},
	{"Malay - Brunei", "ms-bn"},
	{"Malay - Malaysia", "ms-my"},
	{"Maltese", "mt"},
	{"Maltese - Malta", "mt-mt"},
	{"Marathi", "mr"},
	{"Mongolian", "mn"},
	{"Norwegian", "no"},
	{"Norwegian Bokmal", "nb"},
	{"Norwegian - Norway", "no-no"},
	{"Nyanja", "ny"},
	{"ʻŌlelo Hawaiʻi", "haw"},
	{"Polish", "pl"},
	{"Polish - Poland", "pl-pl"},
	{"Portuguese", "pt"},
	{"Portuguese - Brazil", "pt-br"},
	{"Portuguese - Portugal", "pt-pt"},
	{"Punjabi", "pa"},
	{"Romanian", "ro"},
	{"Romanian - Romania", "ro-ro"},
	{"Russian", "ru"},
	{"Russian - Russia", "ru-ru"},
	{"Sanskrit", "sa"},
	{"Serbian", "sr"},
	{"Serbian - Bosnia and Herzegovina", "sr-ba"},
	{"Serbian - Montenegro", "sr-me"},
	{"Serbian - Serbia", "sr-rs"},
	{"Serbian - Serbia and Montenegro (Former)", "sr-cs"},
	{"Slovak", "sk"},
	{"Slovak - Slovakia", "sk-sk"},
	{"Slovenian", "sl"},
	{"Slovenian - Slovenia", "sl-si"},
	{"Spanish", "es"},
	{"Spanish - Argentina", "es-ar"},
	{"Spanish - Bolivia", "es-bo"},
	{"Spanish - Chile", "es-cl"},
	{"Spanish - Colombia", "es-co"},
	{"Spanish - Costa Rica", "es-cr"},
	{"Spanish - Cuba", "es-cu"},
	{"Spanish - Dominican Republic", "es-do"},
	{"Spanish - Ecuador", "es-ec"},
	{"Spanish - El Salvador", "es-sv"},
	{"Spanish - Guatemala", "es-gt"},
	{"Spanish - Honduras", "es-hn"},
	{"Spanish - Mexico", "es-mx"},
	{"Spanish - Nicaragua", "es-ni"},
	{"Spanish - Panama", "es-pa"},
	{"Spanish - Paraguay", "es-py"},
	{"Spanish - Peru", "es-pe"},
	{"Spanish - Puerto Rico", "es-pr"},
	{"Spanish - Spain", "es-es"},
	{"Spanish - United States", "es-us"},
	{"Spanish - Uruguay", "es-uy"},
	{"Spanish - Venezuela", "es-ve"},
	{"Swahili", "sw"},
	{"Swedish", "sv"},
	{"Swedish - Finland", "sv-fi"},
	{"Swedish - Sweden", "sv-se"},
	{"Syriac", "sy"},
	{"Tagalog", "t1"},
	{"Tamil", "ta"},
	{"Tatar", "tt"},
	{"Telugu", "te"},
	{"Thai", "th"},
	{"Thai - Thailand", "th-th"},
	{"Turkish", "tr"},
	{"Turkish - Türkiye", "tr-tr"},
	{"Ukrainian", "uk"},
	{"Ukrainian - Ukraine", "uk-ua"},
	{"Urdu", "ur"},
	{"Uzbek", "uz"},
	{"Vietnamese", "vi"},
	{"Vietnamese - Vietnam", "vi-vn"},
	{"Yoruba", "yo"},
}

// languageIndex is process-wide read-only state, built once at init. Keys are
// lower-cased labels and codes.
var languageIndex = buildLanguageIndex()

func buildLanguageIndex() map[string]string {
	index := make(map[string]string, len(languagePairs)*2)
	for _, pair := range languagePairs {
		index[strings.ToLower(pair.label)] = pair.code
		index[strings.ToLower(pair.code)] = pair.code
	}
	return index
}

// languageCode resolves a language label or code to the directory's internal
// value. The second return is false when the label is unknown.
func languageCode(label string) (string, bool) {
	code, ok := languageIndex[strings.ToLower(strings.TrimSpace(label))]
	return code, ok
}
