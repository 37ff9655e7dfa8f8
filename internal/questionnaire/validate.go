package questionnaire

import (
	"fmt"
	"strings"
)

// validateCatalog performs all structural checks on a catalog.
// Returns a combined error describing all problems found, or nil if valid.
func validateCatalog(c *Catalog) error {
	var errs []string

	seen := make(map[int]bool, len(c.questions))
	for i, q := range c.questions {
		if seen[q.ID] {
			errs = append(errs, fmt.Sprintf("duplicate question ID: %d", q.ID))
		}
		seen[q.ID] = true

		if q.ID <= 0 {
			errs = append(errs, fmt.Sprintf("question ID must be > 0, got %d", q.ID))
		}
		if i > 0 && q.ID <= c.questions[i-1].ID {
			errs = append(errs, fmt.Sprintf("question %d is out of order", q.ID))
		}

		switch q.Type {
		case TypeChoice:
			if len(q.Options) == 0 {
				errs = append(errs, fmt.Sprintf("choice question %d has no options", q.ID))
			}
			for j, o := range q.Options {
				if o.Value < 0 {
					errs = append(errs, fmt.Sprintf("question %d option %d: value must be >= 0, got %g", q.ID, j, o.Value))
				}
			}
		case TypeScale, TypeOpen:
			if len(q.Options) > 0 {
				errs = append(errs, fmt.Sprintf("%s question %d must not declare options", strings.ToLower(string(q.Type)), q.ID))
			}
		default:
			errs = append(errs, fmt.Sprintf("question %d has unknown type %q", q.ID, q.Type))
		}
	}

	for _, name := range c.order {
		p := c.partitions[name]
		claimed := make(map[int]string)
		dimNames := make(map[string]bool, len(p.Dimensions))

		for _, d := range p.Dimensions {
			if dimNames[d.Name] {
				errs = append(errs, fmt.Sprintf("partition %q: duplicate dimension %q", name, d.Name))
			}
			dimNames[d.Name] = true

			if len(d.QuestionIDs) == 0 {
				errs = append(errs, fmt.Sprintf("partition %q: dimension %q has no questions", name, d.Name))
			}
			for _, id := range d.QuestionIDs {
				q, ok := c.byID[id]
				if !ok {
					errs = append(errs, fmt.Sprintf("partition %q: dimension %q references nonexistent question %d", name, d.Name, id))
					continue
				}
				if q.Type == TypeOpen {
					errs = append(errs, fmt.Sprintf("partition %q: dimension %q includes open question %d", name, d.Name, id))
				}
				if owner, dup := claimed[id]; dup {
					errs = append(errs, fmt.Sprintf("partition %q: question %d assigned to both %q and %q", name, id, owner, d.Name))
				}
				claimed[id] = d.Name
			}
			if d.MaxScore <= 0 {
				errs = append(errs, fmt.Sprintf("partition %q: dimension %q has no achievable score", name, d.Name))
			}
			if d.NominalMax > 0 && d.MaxScore > d.NominalMax {
				errs = append(errs, fmt.Sprintf("partition %q: dimension %q catalog max %g exceeds nominal max %g", name, d.Name, d.MaxScore, d.NominalMax))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog %q validation failed:\n  %s", c.name, strings.Join(errs, "\n  "))
	}
	return nil
}
