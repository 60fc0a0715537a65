package uploads

// Repo stores upload batches on the serving side
type Repo interface {
	Create(batch *Batch) error
	Get(uploadID string) (*Batch, error)
	Update(batch *Batch) error
}
