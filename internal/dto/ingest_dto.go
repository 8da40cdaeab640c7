package dto

// CorpusRecord is one parsed line of the training corpus.
type CorpusRecord struct {
	Id       int    `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// EmbedProfileRecordMessage is the payload published per record on the
// ingest topic.
type EmbedProfileRecordMessage struct {
	Record CorpusRecord `json:"record"`
}

type IngestSummary struct {
	Stored int
	Failed int
}
