package proximity

import (
	"strings"

	"github.com/conecta-coleta/internal/domain"
)

// Filter отбирает пункты перед ранжированием.
// Реализации: ExactCategory и TagSearch; nil означает "без фильтра".
type Filter interface {
	Match(p domain.DisposalPoint) bool
	isFilter()
}

// ExactCategory пропускает пункты с точно совпадающей категорией
type ExactCategory struct {
	Category domain.DisposalCategory
}

func (f ExactCategory) Match(p domain.DisposalPoint) bool {
	return p.Category == f.Category
}

func (ExactCategory) isFilter() {}

// TagSearch пропускает пункты, у которых хотя бы один материал содержит текст без учёта регистра.
// Пустой текст совпадает со всем.
type TagSearch struct {
	Text string
}

func (f TagSearch) Match(p domain.DisposalPoint) bool {
	needle := strings.ToLower(strings.TrimSpace(f.Text))
	if needle == "" {
		return true
	}
	for _, m := range p.Materials {
		if strings.Contains(strings.ToLower(m), needle) {
			return true
		}
	}
	return false
}

func (TagSearch) isFilter() {}
