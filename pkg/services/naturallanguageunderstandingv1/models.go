package naturallanguageunderstandingv1

// Usage reports the cost of an analysis.
type Usage struct {
	Features       int64 `json:"features"                  yaml:"features"`
	TextCharacters int64 `json:"text_characters,omitempty" yaml:"text_characters,omitempty"`
	TextUnits      int64 `json:"text_units,omitempty"      yaml:"text_units,omitempty"`
}

// EmotionScores are the scores of the five basic emotions.
type EmotionScores struct {
	Anger   *float64 `json:"anger,omitempty"   yaml:"anger,omitempty"`
	Disgust *float64 `json:"disgust,omitempty" yaml:"disgust,omitempty"`
	Fear    *float64 `json:"fear,omitempty"    yaml:"fear,omitempty"`
	Joy     *float64 `json:"joy,omitempty"     yaml:"joy,omitempty"`
	Sadness *float64 `json:"sadness,omitempty" yaml:"sadness,omitempty"`
}

// FeatureSentimentResults is the sentiment of an extracted item.
type FeatureSentimentResults struct {
	Score *float64 `json:"score,omitempty" yaml:"score,omitempty"`
}

// ConceptsResult is a detected concept.
type ConceptsResult struct {
	Text            string  `json:"text"                       yaml:"text"`
	Relevance       float64 `json:"relevance"                  yaml:"relevance"`
	DbpediaResource *string `json:"dbpedia_resource,omitempty" yaml:"dbpedia_resource,omitempty"`
}

// DocumentEmotionResults is the emotion of the whole document.
type DocumentEmotionResults struct {
	Emotion *EmotionScores `json:"emotion,omitempty" yaml:"emotion,omitempty"`
}

// TargetedEmotionResults is the emotion towards one target phrase.
type TargetedEmotionResults struct {
	Text    string         `json:"text"              yaml:"text"`
	Emotion *EmotionScores `json:"emotion,omitempty" yaml:"emotion,omitempty"`
}

// EmotionResult groups document and targeted emotion.
type EmotionResult struct {
	Document *DocumentEmotionResults  `json:"document,omitempty" yaml:"document,omitempty"`
	Targets  []TargetedEmotionResults `json:"targets,omitempty"  yaml:"targets,omitempty"`
}

// EntityMention is one occurrence of an entity.
type EntityMention struct {
	Text     string  `json:"text"     yaml:"text"`
	Location []int64 `json:"location" yaml:"location"`
}

// EntitiesResult is an extracted entity.
type EntitiesResult struct {
	Type           string                   `json:"type"                      yaml:"type"`
	Text           string                   `json:"text"                      yaml:"text"`
	Relevance      float64                  `json:"relevance"                 yaml:"relevance"`
	Count          int64                    `json:"count"                     yaml:"count"`
	Mentions       []EntityMention          `json:"mentions,omitempty"        yaml:"mentions,omitempty"`
	Emotion        *EmotionScores           `json:"emotion,omitempty"         yaml:"emotion,omitempty"`
	Sentiment      *FeatureSentimentResults `json:"sentiment,omitempty"       yaml:"sentiment,omitempty"`
	Disambiguation map[string]interface{}   `json:"disambiguation,omitempty"  yaml:"disambiguation,omitempty"`
}

// KeywordsResult is an extracted keyword.
type KeywordsResult struct {
	Text      string                   `json:"text"                yaml:"text"`
	Relevance float64                  `json:"relevance"           yaml:"relevance"`
	Count     *int64                   `json:"count,omitempty"     yaml:"count,omitempty"`
	Emotion   *EmotionScores           `json:"emotion,omitempty"   yaml:"emotion,omitempty"`
	Sentiment *FeatureSentimentResults `json:"sentiment,omitempty" yaml:"sentiment,omitempty"`
}

// Author is a document author found in the metadata.
type Author struct {
	Name string `json:"name" yaml:"name"`
}

// MetadataResult is document metadata, available for URL and HTML input.
type MetadataResult struct {
	Authors         []Author            `json:"authors,omitempty"          yaml:"authors,omitempty"`
	PublicationDate *string             `json:"publication_date,omitempty" yaml:"publication_date,omitempty"`
	Title           *string             `json:"title,omitempty"            yaml:"title,omitempty"`
	Image           *string             `json:"image,omitempty"            yaml:"image,omitempty"`
	Feeds           []map[string]string `json:"feeds,omitempty"            yaml:"feeds,omitempty"`
}

// RelationArgument is one side of a relation.
type RelationArgument struct {
	Entities []map[string]interface{} `json:"entities,omitempty" yaml:"entities,omitempty"`
	Location []int64                  `json:"location,omitempty" yaml:"location,omitempty"`
	Text     string                   `json:"text"               yaml:"text"`
}

// RelationsResult is an extracted relation.
type RelationsResult struct {
	Score     float64            `json:"score"     yaml:"score"`
	Sentence  string             `json:"sentence"  yaml:"sentence"`
	Type      string             `json:"type"      yaml:"type"`
	Arguments []RelationArgument `json:"arguments" yaml:"arguments"`
}

// SemanticRolesResult is a subject-action-object triple.
type SemanticRolesResult struct {
	Sentence string                 `json:"sentence"         yaml:"sentence"`
	Subject  map[string]interface{} `json:"subject,omitempty" yaml:"subject,omitempty"`
	Action   map[string]interface{} `json:"action,omitempty"  yaml:"action,omitempty"`
	Object   map[string]interface{} `json:"object,omitempty"  yaml:"object,omitempty"`
}

// DocumentSentimentResults is the sentiment of the whole document.
type DocumentSentimentResults struct {
	Label *string  `json:"label,omitempty" yaml:"label,omitempty"`
	Score *float64 `json:"score,omitempty" yaml:"score,omitempty"`
}

// TargetedSentimentResults is the sentiment towards one target phrase.
type TargetedSentimentResults struct {
	Text  string   `json:"text"            yaml:"text"`
	Score *float64 `json:"score,omitempty" yaml:"score,omitempty"`
}

// SentimentResult groups document and targeted sentiment.
type SentimentResult struct {
	Document *DocumentSentimentResults  `json:"document,omitempty" yaml:"document,omitempty"`
	Targets  []TargetedSentimentResults `json:"targets,omitempty"  yaml:"targets,omitempty"`
}

// CategoriesResult is a category from the five-level taxonomy.
type CategoriesResult struct {
	Label string  `json:"label" yaml:"label"`
	Score float64 `json:"score" yaml:"score"`
}

// AnalysisResults is the response of Analyze.
type AnalysisResults struct {
	Language      *string               `json:"language,omitempty"       yaml:"language,omitempty"`
	AnalyzedText  *string               `json:"analyzed_text,omitempty"  yaml:"analyzed_text,omitempty"`
	RetrievedURL  *string               `json:"retrieved_url,omitempty"  yaml:"retrieved_url,omitempty"`
	Usage         *Usage                `json:"usage,omitempty"          yaml:"usage,omitempty"`
	Concepts      []ConceptsResult      `json:"concepts,omitempty"       yaml:"concepts,omitempty"`
	Entities      []EntitiesResult      `json:"entities,omitempty"       yaml:"entities,omitempty"`
	Keywords      []KeywordsResult      `json:"keywords,omitempty"       yaml:"keywords,omitempty"`
	Categories    []CategoriesResult    `json:"categories,omitempty"     yaml:"categories,omitempty"`
	Emotion       *EmotionResult        `json:"emotion,omitempty"        yaml:"emotion,omitempty"`
	Metadata      *MetadataResult       `json:"metadata,omitempty"       yaml:"metadata,omitempty"`
	Relations     []RelationsResult     `json:"relations,omitempty"      yaml:"relations,omitempty"`
	SemanticRoles []SemanticRolesResult `json:"semantic_roles,omitempty" yaml:"semantic_roles,omitempty"`
	Sentiment     *SentimentResult      `json:"sentiment,omitempty"      yaml:"sentiment,omitempty"`
}

// Model is a custom model deployed from Knowledge Studio.
type Model struct {
	ModelID     string  `json:"model_id"              yaml:"model_id"              validate:"required"`
	Status      *string `json:"status,omitempty"      yaml:"status,omitempty"`
	Language    *string `json:"language,omitempty"    yaml:"language,omitempty"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`
	WorkspaceID *string `json:"workspace_id,omitempty" yaml:"workspace_id,omitempty"`
	Version     *string `json:"version,omitempty"     yaml:"version,omitempty"`
}

// ListModelsResults is the response of ListModels.
type ListModelsResults struct {
	Models []Model `json:"models" yaml:"models"`
}

// DeleteModelResults is the response of DeleteModel.
type DeleteModelResults struct {
	Deleted *string `json:"deleted,omitempty" yaml:"deleted,omitempty"`
}
