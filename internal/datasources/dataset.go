package datasources

// DatasetRepository is everything the relational store provides.
type DatasetRepository interface {
	UserRepository
	FreetRepository
	ReactionRepository
	BookmarkRepository
	StatusRepository
	CascadeRepository
	APITokenRepository
}
