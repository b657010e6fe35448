package texttospeechv1

// SupportedFeatures lists the customization features of a voice.
type SupportedFeatures struct {
	CustomPronunciation bool `json:"custom_pronunciation" yaml:"custom_pronunciation"`
	VoiceTransformation bool `json:"voice_transformation" yaml:"voice_transformation"`
}

// Voice describes a synthesis voice.
type Voice struct {
	Name              string             `json:"name"                         yaml:"name"              validate:"required"`
	Language          string             `json:"language"                     yaml:"language"          validate:"required"`
	Gender            string             `json:"gender"                       yaml:"gender"`
	URL               string             `json:"url"                          yaml:"url"`
	Description       string             `json:"description"                  yaml:"description"`
	Customizable      bool               `json:"customizable"                 yaml:"customizable"`
	SupportedFeatures *SupportedFeatures `json:"supported_features,omitempty" yaml:"supported_features,omitempty"`
	Customization     *VoiceModel        `json:"customization,omitempty"      yaml:"customization,omitempty"`
}

// Voices is the response of ListVoices.
type Voices struct {
	Voices []Voice `json:"voices" yaml:"voices" validate:"required"`
}

// Pronunciation is the response of GetPronunciation.
type Pronunciation struct {
	Pronunciation string `json:"pronunciation" yaml:"pronunciation" validate:"required"`
}

// Word is a custom word and its translation, a sounds-like spelling or a
// phonetic SPR/IPA string.
type Word struct {
	Word         string  `json:"word"                     yaml:"word"                     validate:"required"`
	Translation  string  `json:"translation"              yaml:"translation"              validate:"required"`
	PartOfSpeech *string `json:"part_of_speech,omitempty" yaml:"part_of_speech,omitempty"`
}

// Words is the response of ListWords.
type Words struct {
	Words []Word `json:"words" yaml:"words" validate:"required"`
}

// Translation is the response of GetWord.
type Translation struct {
	Translation  string  `json:"translation"              yaml:"translation"              validate:"required"`
	PartOfSpeech *string `json:"part_of_speech,omitempty" yaml:"part_of_speech,omitempty"`
}

// VoiceModel is a custom voice model.
type VoiceModel struct {
	CustomizationID string  `json:"customization_id"        yaml:"customization_id"        validate:"required"`
	Name            *string `json:"name,omitempty"          yaml:"name,omitempty"`
	Language        *string `json:"language,omitempty"      yaml:"language,omitempty"`
	Owner           *string `json:"owner,omitempty"         yaml:"owner,omitempty"`
	Created         *string `json:"created,omitempty"       yaml:"created,omitempty"`
	LastModified    *string `json:"last_modified,omitempty" yaml:"last_modified,omitempty"`
	Description     *string `json:"description,omitempty"   yaml:"description,omitempty"`
	Words           []Word  `json:"words,omitempty"         yaml:"words,omitempty"`
}

// VoiceModels is the response of ListVoiceModels.
type VoiceModels struct {
	Customizations []VoiceModel `json:"customizations" yaml:"customizations" validate:"required"`
}
