package questionnaire

import "fmt"

// Dimension is a named axis aggregating a fixed subset of questions.
type Dimension struct {
	Name        string
	QuestionIDs []int

	// MaxScore is the highest achievable raw total, derived from the catalog
	// when the catalog is built. Normalization always divides by it.
	MaxScore float64

	// NominalMax is the documented product maximum for the dimension. It is
	// used for display only and may exceed MaxScore, never undercut it.
	NominalMax float64
}

// Partition is an ordered set of dimensions that never share a question.
type Partition struct {
	Name       string
	Dimensions []Dimension
}

// Names returns the dimension names in catalog order.
func (p *Partition) Names() []string {
	out := make([]string, len(p.Dimensions))
	for i, d := range p.Dimensions {
		out[i] = d.Name
	}
	return out
}

// Lookup returns the dimension with the given name.
func (p *Partition) Lookup(name string) (Dimension, bool) {
	for _, d := range p.Dimensions {
		if d.Name == name {
			return d, true
		}
	}
	return Dimension{}, false
}

// Catalog is an immutable question set with its dimension partitions.
type Catalog struct {
	name       string
	questions  []Question
	byID       map[int]*Question
	partitions map[string]*Partition
	order      []string
}

// newCatalog indexes the questions, derives each dimension's MaxScore and
// validates the result.
func newCatalog(name string, questions []Question, partitions ...Partition) (*Catalog, error) {
	c := &Catalog{
		name:       name,
		questions:  questions,
		byID:       make(map[int]*Question, len(questions)),
		partitions: make(map[string]*Partition, len(partitions)),
	}

	for i := range c.questions {
		c.byID[c.questions[i].ID] = &c.questions[i]
	}

	for _, p := range partitions {
		dims := make([]Dimension, len(p.Dimensions))
		for i, d := range p.Dimensions {
			d.QuestionIDs = append([]int(nil), d.QuestionIDs...)
			d.MaxScore = 0
			for _, id := range d.QuestionIDs {
				if q, ok := c.byID[id]; ok {
					d.MaxScore += q.MaxValue()
				}
			}
			dims[i] = d
		}
		c.partitions[p.Name] = &Partition{Name: p.Name, Dimensions: dims}
		c.order = append(c.order, p.Name)
	}

	if err := validateCatalog(c); err != nil {
		return nil, err
	}
	return c, nil
}

// mustCatalog is newCatalog for package-level static catalogs.
func mustCatalog(name string, questions []Question, partitions ...Partition) *Catalog {
	c, err := newCatalog(name, questions, partitions...)
	if err != nil {
		panic(fmt.Sprintf("questionnaire: %v", err))
	}
	return c
}

// Name returns the catalog identifier.
func (c *Catalog) Name() string { return c.name }

// Questions returns all questions in id order.
func (c *Catalog) Questions() []Question {
	out := make([]Question, len(c.questions))
	copy(out, c.questions)
	return out
}

// Len returns the number of questions.
func (c *Catalog) Len() int { return len(c.questions) }

// Question returns the question with the given id.
func (c *Catalog) Question(id int) (*Question, bool) {
	q, ok := c.byID[id]
	return q, ok
}

// Partition returns a named dimension partition.
func (c *Catalog) Partition(name string) (*Partition, bool) {
	p, ok := c.partitions[name]
	return p, ok
}

// MustPartition is Partition for names the caller knows exist.
func (c *Catalog) MustPartition(name string) *Partition {
	p, ok := c.partitions[name]
	if !ok {
		panic(fmt.Sprintf("questionnaire: catalog %q has no partition %q", c.name, name))
	}
	return p
}

// PartitionNames returns the partition names in declaration order.
func (c *Catalog) PartitionNames() []string {
	return append([]string(nil), c.order...)
}

// OpenQuestions returns the OPEN questions in id order.
func (c *Catalog) OpenQuestions() []Question {
	var out []Question
	for _, q := range c.questions {
		if q.Type == TypeOpen {
			out = append(out, q)
		}
	}
	return out
}
