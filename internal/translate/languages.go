package translate

// MedicalLanguage is a translation target offered on the page.
type MedicalLanguage struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	NativeName string `json:"nativeName"`
}

// CommonMedicalLanguages are the languages most requested in clinical settings.
var CommonMedicalLanguages = []MedicalLanguage{
	{Code: "es", Name: "Spanish", NativeName: "Español"},
	{Code: "zh", Name: "Chinese (Simplified)", NativeName: "中文 (简体)"},
	{Code: "zh-TW", Name: "Chinese (Traditional)", NativeName: "中文 (繁體)"},
	{Code: "ar", Name: "Arabic", NativeName: "العربية"},
	{Code: "hi", Name: "Hindi", NativeName: "हिन्दी"},
	{Code: "fr", Name: "French", NativeName: "Français"},
	{Code: "pt", Name: "Portuguese", NativeName: "Português"},
	{Code: "ru", Name: "Russian", NativeName: "Русский"},
	{Code: "ko", Name: "Korean", NativeName: "한국어"},
	{Code: "ja", Name: "Japanese", NativeName: "日本語"},
	{Code: "de", Name: "German", NativeName: "Deutsch"},
	{Code: "it", Name: "Italian", NativeName: "Italiano"},
	{Code: "pl", Name: "Polish", NativeName: "Polski"},
	{Code: "tr", Name: "Turkish", NativeName: "Türkçe"},
	{Code: "vi", Name: "Vietnamese", NativeName: "Tiếng Việt"},
	{Code: "th", Name: "Thai", NativeName: "ไทย"},
	{Code: "fa", Name: "Persian", NativeName: "فارسی"},
	{Code: "ur", Name: "Urdu", NativeName: "اردو"},
	{Code: "bn", Name: "Bengali", NativeName: "বাংলা"},
	{Code: "ta", Name: "Tamil", NativeName: "தமிழ்"},
}

// LanguageName returns the English name of a common medical language, or
// the code itself when it is not in the list.
func LanguageName(code string) string {
	for _, l := range CommonMedicalLanguages {
		if l.Code == code {
			return l.Name
		}
	}
	return code
}
