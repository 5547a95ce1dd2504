package renderer

import (
	"html/template"

	"github.com/unrolled/render"
)

func New(dir string) *render.Render {
	return render.New(render.Options{
		Directory:  dir,
		Layout:     "layout",
		Extensions: []string{".html"},
		Funcs: []template.FuncMap{
			{
				"add": func(a, b int) int { return a + b },
				"sub": func(a, b int) int { return a - b },
				"sameID": func(v int, id uint) bool {
					return v >= 0 && uint(v) == id
				},
				"contains": func(ids []int, id uint) bool {
					for _, v := range ids {
						if v >= 0 && uint(v) == id {
							return true
						}
					}
					return false
				},
			},
		},
	})
}
