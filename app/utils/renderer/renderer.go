package renderer

import (
	"html/template"

	"github.com/shopspring/decimal"
	"github.com/unrolled/render"
	"github.com/velato/storefront/app/utils/format"
)

func New() *render.Render {
	return NewWithDirectory("templates")
}

// NewWithDirectory builds the renderer against an explicit template
// directory, for callers not running from the repository root.
func NewWithDirectory(dir string) *render.Render {
	return render.New(render.Options{
		Directory:  dir,
		Layout:     "layout",
		Extensions: []string{".html"},
		Funcs: []template.FuncMap{
			{
				"money": func(amount decimal.Decimal) string {
					return format.USD(amount)
				},
				"add": func(a, b int) int { return a + b },
				"sub": func(a, b int) int { return a - b },
				"until": func(count int) []int {
					items := make([]int, count)
					for i := 0; i < count; i++ {
						items[i] = i
					}
					return items
				},
			},
		},
	})
}
