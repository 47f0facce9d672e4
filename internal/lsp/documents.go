package lsp

import "sync"

// DocumentStore holds open palette documents and their latest analysis,
// keyed by URI.
type DocumentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

type document struct {
	content string
	result  *AnalysisResult
}

func NewDocumentStore() *DocumentStore {
	return &DocumentStore{docs: make(map[string]*document)}
}

// Open stores a newly opened document and analyzes it.
func (s *DocumentStore) Open(uri, content string) *AnalysisResult {
	return s.set(uri, content)
}

// Update replaces a document's content and re-analyzes it.
func (s *DocumentStore) Update(uri, content string) *AnalysisResult {
	return s.set(uri, content)
}

func (s *DocumentStore) set(uri, content string) *AnalysisResult {
	result := Analyze(uri, content)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[uri] = &document{content: content, result: result}
	return result
}

func (s *DocumentStore) Close(uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, uri)
}

// Get returns the current content of an open document.
func (s *DocumentStore) Get(uri string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[uri]
	if !ok {
		return "", false
	}
	return doc.content, true
}

// Result returns the latest analysis of an open document.
func (s *DocumentStore) Result(uri string) (*AnalysisResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[uri]
	if !ok {
		return nil, false
	}
	return doc.result, true
}
