package ingest

// Pipeline runs raw query/count pairs through the full normalization
// flow: tokenization, stemming, consolidation, then stem exclusion.
// Each stage consumes the complete output of the prior stage; nothing
// is streamed or mutated after it is produced.
type Pipeline struct {
	tokenizer *Tokenizer
	stemmer   Stemmer
	banned    []string
}

// NewPipeline creates an ingestion pipeline with the given components.
func NewPipeline(tokenizer *Tokenizer, stemmer Stemmer, excludedStems []string) *Pipeline {
	return &Pipeline{
		tokenizer: tokenizer,
		stemmer:   stemmer,
		banned:    excludedStems,
	}
}

// Query is one raw search query with its usage count.
type Query struct {
	Text  string
	Count int64
}

// Tokens expands queries into per-token counts. Every token inherits
// the full count of its originating query: a word that is part of a
// query searched N times was itself searched N times. Counts are not
// divided across the words of a multi-word query.
func (p *Pipeline) Tokens(queries []Query) []TokenCount {
	var out []TokenCount
	for _, q := range queries {
		for _, tok := range p.tokenizer.Tokenize(q.Text) {
			out = append(out, TokenCount{Token: tok, Count: q.Count})
		}
	}
	return out
}

// Groups runs queries through tokenization, consolidation and
// exclusion, returning the surviving stem groups in first-appearance
// order.
func (p *Pipeline) Groups(queries []Query) []StemGroup {
	groups := Consolidate(p.Tokens(queries), p.stemmer)
	return ExcludeStems(groups, p.banned)
}
