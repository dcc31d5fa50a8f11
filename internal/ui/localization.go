package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle        = "app_title"
	KeyAlbumCovers     = "album_covers"
	KeyAlbumTitles     = "album_titles"
	KeySettings        = "settings"
	KeyFile            = "file"
	KeyView            = "view"
	KeyLanguage        = "language"
	KeyTheme           = "theme"
	KeyThemeSystem     = "theme_system"
	KeyThemeLight      = "theme_light"
	KeyThemeDark       = "theme_dark"
	KeyExpandOnLaunch  = "expand_on_launch"
	KeyExpandAll       = "expand_all"
	KeyCollapseAll     = "collapse_all"
	KeySave            = "save"
	KeyCancel          = "cancel"
	KeySettingsSaved   = "settings_saved"
	KeyNoAlbums        = "no_albums"
	KeySongCountFormat = "song_count_format"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:        "Tayrics",
		KeyAlbumCovers:     "Album Covers",
		KeyAlbumTitles:     "Album Titles",
		KeySettings:        "Settings",
		KeyFile:            "File",
		KeyView:            "View",
		KeyLanguage:        "Language",
		KeyTheme:           "Theme",
		KeyThemeSystem:     "System",
		KeyThemeLight:      "Light",
		KeyThemeDark:       "Dark",
		KeyExpandOnLaunch:  "Expand albums on launch",
		KeyExpandAll:       "Expand All Albums",
		KeyCollapseAll:     "Collapse All Albums",
		KeySave:            "Save",
		KeyCancel:          "Cancel",
		KeySettingsSaved:   "Settings saved successfully!",
		KeyNoAlbums:        "No albums",
		KeySongCountFormat: "%d songs",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:        "Tayrics",
		KeyAlbumCovers:     "Обложки альбомов",
		KeyAlbumTitles:     "Названия альбомов",
		KeySettings:        "Настройки",
		KeyFile:            "Файл",
		KeyView:            "Вид",
		KeyLanguage:        "Язык",
		KeyTheme:           "Тема",
		KeyThemeSystem:     "Системная",
		KeyThemeLight:      "Светлая",
		KeyThemeDark:       "Тёмная",
		KeyExpandOnLaunch:  "Раскрывать альбомы при запуске",
		KeyExpandAll:       "Раскрыть все альбомы",
		KeyCollapseAll:     "Свернуть все альбомы",
		KeySave:            "Сохранить",
		KeyCancel:          "Отмена",
		KeySettingsSaved:   "Настройки успешно сохранены!",
		KeyNoAlbums:        "Нет альбомов",
		KeySongCountFormat: "Песен: %d",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:        "Tayrics",
		KeyAlbumCovers:     "Capas dos Álbuns",
		KeyAlbumTitles:     "Títulos dos Álbuns",
		KeySettings:        "Configurações",
		KeyFile:            "Arquivo",
		KeyView:            "Exibir",
		KeyLanguage:        "Idioma",
		KeyTheme:           "Tema",
		KeyThemeSystem:     "Sistema",
		KeyThemeLight:      "Claro",
		KeyThemeDark:       "Escuro",
		KeyExpandOnLaunch:  "Expandir álbuns ao iniciar",
		KeyExpandAll:       "Expandir Todos os Álbuns",
		KeyCollapseAll:     "Recolher Todos os Álbuns",
		KeySave:            "Salvar",
		KeyCancel:          "Cancelar",
		KeySettingsSaved:   "Configurações salvas com sucesso!",
		KeyNoAlbums:        "Nenhum álbum",
		KeySongCountFormat: "%d músicas",
	}
}
