package domain

import "fmt"

// LanguageOption is one entry of the standard language picker.
type LanguageOption struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Region string `json:"region"`
	Flag   string `json:"flag"`
}

func (o LanguageOption) DisplayName() string {
	return fmt.Sprintf("%s - %s %s (%s)", o.Code, o.Flag, o.Name, o.Region)
}

// StandardLanguages lists the locales offered when adding a language.
var StandardLanguages = []LanguageOption{
	// Americas
	{Code: "en-US", Name: "English", Region: "United States", Flag: "🇺🇸"},
	{Code: "en-CA", Name: "English", Region: "Canada", Flag: "🇨🇦"},
	{Code: "fr-CA", Name: "French", Region: "Canada", Flag: "🇨🇦"},
	{Code: "es-MX", Name: "Spanish", Region: "Mexico", Flag: "🇲🇽"},
	{Code: "pt-BR", Name: "Portuguese", Region: "Brazil", Flag: "🇧🇷"},
	{Code: "es-AR", Name: "Spanish", Region: "Argentina", Flag: "🇦🇷"},
	{Code: "es-CO", Name: "Spanish", Region: "Colombia", Flag: "🇨🇴"},
	{Code: "es-CL", Name: "Spanish", Region: "Chile", Flag: "🇨🇱"},
	{Code: "es-PE", Name: "Spanish", Region: "Peru", Flag: "🇵🇪"},
	// Europe
	{Code: "en-GB", Name: "English", Region: "United Kingdom", Flag: "🇬🇧"},
	{Code: "en-IE", Name: "English", Region: "Ireland", Flag: "🇮🇪"},
	{Code: "fr-FR", Name: "French", Region: "France", Flag: "🇫🇷"},
	{Code: "de-DE", Name: "German", Region: "Germany", Flag: "🇩🇪"},
	{Code: "de-AT", Name: "German", Region: "Austria", Flag: "🇦🇹"},
	{Code: "de-CH", Name: "German", Region: "Switzerland", Flag: "🇨🇭"},
	{Code: "fr-CH", Name: "French", Region: "Switzerland", Flag: "🇨🇭"},
	{Code: "it-IT", Name: "Italian", Region: "Italy", Flag: "🇮🇹"},
	{Code: "es-ES", Name: "Spanish", Region: "Spain", Flag: "🇪🇸"},
	{Code: "ca-ES", Name: "Catalan", Region: "Spain", Flag: "🇪🇸"},
	{Code: "pt-PT", Name: "Portuguese", Region: "Portugal", Flag: "🇵🇹"},
	{Code: "nl-NL", Name: "Dutch", Region: "Netherlands", Flag: "🇳🇱"},
	{Code: "nl-BE", Name: "Dutch", Region: "Belgium", Flag: "🇧🇪"},
	{Code: "fr-BE", Name: "French", Region: "Belgium", Flag: "🇧🇪"},
	{Code: "sv-SE", Name: "Swedish", Region: "Sweden", Flag: "🇸🇪"},
	{Code: "nb-NO", Name: "Norwegian", Region: "Norway", Flag: "🇳🇴"},
	{Code: "da-DK", Name: "Danish", Region: "Denmark", Flag: "🇩🇰"},
	{Code: "fi-FI", Name: "Finnish", Region: "Finland", Flag: "🇫🇮"},
	{Code: "pl-PL", Name: "Polish", Region: "Poland", Flag: "🇵🇱"},
	{Code: "cs-CZ", Name: "Czech", Region: "Czech Republic", Flag: "🇨🇿"},
	{Code: "hu-HU", Name: "Hungarian", Region: "Hungary", Flag: "🇭�🇺"},
	{Code: "ro-RO", Name: "Romanian", Region: "Romania", Flag: "🇷🇴"},
	{Code: "el-GR", Name: "Greek", Region: "Greece", Flag: "🇬🇷"},
	{Code: "tr-TR", Name: "Turkish", Region: "Turkey", Flag: "🇹🇷"},
	{Code: "ru-RU", Name: "Russian", Region: "Russia", Flag: "🇷🇺"},
	{Code: "uk-UA", Name: "Ukrainian", Region: "Ukraine", Flag: "🇺🇦"},
	// Asia-Pacific
	{Code: "zh-CN", Name: "Chinese (Simplified)", Region: "China", Flag: "🇨🇳"},
	{Code: "zh-TW", Name: "Chinese (Traditional)", Region: "Taiwan", Flag: "🇹🇼"},
	{Code: "ja-JP", Name: "Japanese", Region: "Japan", Flag: "🇯🇵"},
	{Code: "ko-KR", Name: "Korean", Region: "South Korea", Flag: "🇰🇷"},
	{Code: "hi-IN", Name: "Hindi", Region: "India", Flag: "🇮🇳"},
	{Code: "en-IN", Name: "English", Region: "India", Flag: "🇮🇳"},
	{Code: "th-TH", Name: "Thai", Region: "Thailand", Flag: "🇹🇭"},
	{Code: "vi-VN", Name: "Vietnamese", Region: "Vietnam", Flag: "🇻🇳"},
	{Code: "id-ID", Name: "Indonesian", Region: "Indonesia", Flag: "🇮🇩"},
	{Code: "ms-MY", Name: "Malay", Region: "Malaysia", Flag: "🇲🇾"},
	{Code: "fil-PH", Name: "Filipino", Region: "Philippines", Flag: "🇵🇭"},
	{Code: "en-AU", Name: "English", Region: "Australia", Flag: "🇦🇺"},
	{Code: "en-SG", Name: "English", Region: "Singapore", Flag: "🇸🇬"},
	// Middle East & Africa
	{Code: "ar-SA", Name: "Arabic", Region: "Saudi Arabia", Flag: "🇸🇦"},
	{Code: "ar-AE", Name: "Arabic", Region: "United Arab Emirates", Flag: "🇦🇪"},
	{Code: "he-IL", Name: "Hebrew", Region: "Israel", Flag: "🇮🇱"},
	{Code: "en-ZA", Name: "English", Region: "South Africa", Flag: "🇿🇦"},
	{Code: "sw-KE", Name: "Swahili", Region: "Kenya", Flag: "🇰🇪"},
}

// LookupLanguage finds a catalog entry by code.
func LookupLanguage(code string) (LanguageOption, bool) {
	for _, o := range StandardLanguages {
		if o.Code == code {
			return o, true
		}
	}
	return LanguageOption{}, false
}
