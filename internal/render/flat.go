package render

import (
	"strings"

	"github.com/localnerve/jam-build-viewdb/internal/projector"
	"github.com/localnerve/jam-build-viewdb/internal/schema"
)

type tableStrategy struct{}

func (tableStrategy) Kind() Kind { return KindTable }

func (s tableStrategy) Shape(in Input) Result {
	p := run(in)
	res := p.result(s.Kind())
	res.Items = p.items(p.records)
	return res
}

type listStrategy struct{}

func (listStrategy) Kind() Kind { return KindList }

// Shape adds the description role to each row.
func (s listStrategy) Shape(in Input) Result {
	p := run(in)
	res := p.result(s.Kind())
	desc, hasDesc := p.visibleRole(projector.RoleDescription)

	res.Items = make([]Item, 0, len(p.records))
	for _, rec := range p.records {
		it := p.item(rec)
		if hasDesc {
			it.Description = projector.Display(desc, projector.Value(desc, rec))
		}
		res.Items = append(res.Items, it)
	}
	return res
}

type galleryStrategy struct{}

func (galleryStrategy) Kind() Kind { return KindGallery }

// Shape adds a cover image and description to each card.
func (s galleryStrategy) Shape(in Input) Result {
	p := run(in)
	res := p.result(s.Kind())
	desc, hasDesc := p.visibleRole(projector.RoleDescription)
	cover, hasCover := coverProperty(p.columns)

	res.Items = make([]Item, 0, len(p.records))
	for _, rec := range p.records {
		it := p.item(rec)
		if hasDesc {
			it.Description = projector.Display(desc, projector.Value(desc, rec))
		}
		if hasCover {
			if v := projector.Value(cover, rec); v.Kind == schema.KindText {
				it.Cover = strings.TrimSpace(v.Text)
			}
		}
		res.Items = append(res.Items, it)
	}
	return res
}

// coverProperty is the first url property named like an image. Callers pass
// the visible columns only.
func coverProperty(props []schema.Property) (schema.Property, bool) {
	for _, p := range props {
		if p.Type != schema.PropertyURL {
			continue
		}
		name := strings.ToLower(p.Name)
		if strings.Contains(name, "cover") || strings.Contains(name, "image") {
			return p, true
		}
	}
	return schema.Property{}, false
}
