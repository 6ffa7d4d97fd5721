// Package datatable implementa a projeção genérica das telas de listagem:
// filtro de busca textual, ordenação por coluna e paginação sobre uma
// coleção em memória, junto com o estado de interação que as dirige.
package datatable

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
)

// DefaultPageSize é o tamanho de página usado quando a configuração não informa um
const DefaultPageSize = 10

// Direction indica o sentido da ordenação
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// Column descreve uma coluna da tabela. Value extrai de um registro o valor
// exibível da coluna; para colunas ordenáveis ele também é o valor de
// comparação (numérico, texto ou data).
type Column[T any] struct {
	Key      string
	Label    string
	Sortable bool
	Value    func(item T) any
}

// Options configura uma instância de tabela. SearchKeys são nomes de campos
// exportados do tipo de registro elegíveis para o filtro de busca.
type Options struct {
	PageSize   int
	SearchKeys []string
	SortKey    string
	SortDir    Direction
}

// Table mantém a coleção de entrada (somente leitura) e o estado de
// interação de uma listagem. As operações nunca falham: página fora do
// intervalo é ajustada e chave de ordenação desconhecida é ignorada.
type Table[T any] struct {
	data       []T
	columns    []Column[T]
	pageSize   int
	searchKeys []string

	page    int
	sortKey string
	sortDir Direction
	query   string

	// cache da projeção registro -> campos pesquisáveis
	fields []map[string]any
}

// New cria uma tabela sobre a coleção informada. A coleção nunca é mutada.
func New[T any](data []T, columns []Column[T], opts Options) *Table[T] {
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	sortDir := opts.SortDir
	if sortDir != Descending {
		sortDir = Ascending
	}

	t := &Table[T]{
		data:       data,
		columns:    columns,
		pageSize:   pageSize,
		searchKeys: opts.SearchKeys,
		page:       1,
		sortDir:    sortDir,
	}

	// Ordenação inicial só vale para colunas conhecidas e ordenáveis
	if col, ok := t.column(opts.SortKey); ok && col.Sortable {
		t.sortKey = opts.SortKey
	}

	return t
}

// SetSearchQuery substitui o filtro de busca e volta para a primeira página,
// já que a paginação anterior não faz mais sentido sobre o novo resultado
func (t *Table[T]) SetSearchQuery(query string) {
	t.query = query
	t.page = 1
}

// SetSort define a coluna de ordenação. Repetir a chave atual alterna a
// direção; uma chave nova ordena ascendente. Chaves desconhecidas ou não
// ordenáveis são ignoradas.
func (t *Table[T]) SetSort(key string) {
	col, ok := t.column(key)
	if !ok || !col.Sortable {
		return
	}

	if t.sortKey == key {
		if t.sortDir == Ascending {
			t.sortDir = Descending
		} else {
			t.sortDir = Ascending
		}
		return
	}

	t.sortKey = key
	t.sortDir = Ascending
}

// SetPage ajusta a página atual, limitada ao intervalo [1, TotalPages]
func (t *Table[T]) SetPage(page int) {
	totalPages := t.TotalPages()
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	t.page = page
}

// VisibleRows retorna a fatia da sequência filtrada e ordenada
// correspondente à página atual. A chamada é determinística e não tem
// efeitos colaterais sobre o estado da tabela.
func (t *Table[T]) VisibleRows() []T {
	indexes := t.filteredIndexes()
	t.sortIndexes(indexes)

	totalPages := t.pageCount(len(indexes))
	page := t.page
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * t.pageSize
	if start >= len(indexes) {
		return []T{}
	}

	end := start + t.pageSize
	if end > len(indexes) {
		end = len(indexes)
	}

	rows := make([]T, 0, end-start)
	for _, i := range indexes[start:end] {
		rows = append(rows, t.data[i])
	}
	return rows
}

// Page retorna a página atual (começando em 1)
func (t *Table[T]) Page() int {
	return t.page
}

// TotalPages retorna o total de páginas do resultado filtrado, nunca menor que 1
func (t *Table[T]) TotalPages() int {
	return t.pageCount(len(t.filteredIndexes()))
}

// FilteredCount retorna o total de registros que passam no filtro atual
func (t *Table[T]) FilteredCount() int {
	return len(t.filteredIndexes())
}

// PageSize retorna o tamanho de página fixado na criação da tabela
func (t *Table[T]) PageSize() int {
	return t.pageSize
}

// SortKey retorna a chave da coluna de ordenação atual ("" quando não há)
func (t *Table[T]) SortKey() string {
	return t.sortKey
}

// SortDirection retorna a direção de ordenação atual
func (t *Table[T]) SortDirection() Direction {
	return t.sortDir
}

// Query retorna o filtro de busca atual
func (t *Table[T]) Query() string {
	return t.query
}

// Columns retorna os descritores de coluna da tabela
func (t *Table[T]) Columns() []Column[T] {
	return t.columns
}

func (t *Table[T]) column(key string) (Column[T], bool) {
	for _, col := range t.columns {
		if col.Key == key {
			return col, true
		}
	}
	return Column[T]{}, false
}

// filteredIndexes retorna os índices dos registros que passam no filtro,
// preservando a ordem original da coleção. Um registro passa quando qualquer
// um dos campos de busca contém o texto procurado (sem case).
func (t *Table[T]) filteredIndexes() []int {
	indexes := make([]int, 0, len(t.data))

	query := strings.ToLower(t.query)
	for i := range t.data {
		if query == "" || t.matches(i, query) {
			indexes = append(indexes, i)
		}
	}
	return indexes
}

func (t *Table[T]) matches(i int, query string) bool {
	fields := t.fieldsOf(i)
	for _, key := range t.searchKeys {
		value, ok := fields[key]
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(valueText(value)), query) {
			return true
		}
	}
	return false
}

// fieldsOf projeta o registro em um mapa campo->valor, uma única vez por
// registro; a coleção é somente leitura, então o cache nunca invalida
func (t *Table[T]) fieldsOf(i int) map[string]any {
	if t.fields == nil {
		t.fields = make([]map[string]any, len(t.data))
	}
	if t.fields[i] == nil {
		fields := map[string]any{}
		if err := mapstructure.Decode(t.data[i], &fields); err != nil {
			fields = map[string]any{}
		}
		t.fields[i] = fields
	}
	return t.fields[i]
}

// sortIndexes ordena os índices filtrados de forma estável: chaves iguais
// preservam a ordem relativa original, inclusive na direção descendente
func (t *Table[T]) sortIndexes(indexes []int) {
	if t.sortKey == "" {
		return
	}

	col, ok := t.column(t.sortKey)
	if !ok || !col.Sortable || col.Value == nil {
		return
	}

	sort.SliceStable(indexes, func(a, b int) bool {
		result := compareValues(col.Value(t.data[indexes[a]]), col.Value(t.data[indexes[b]]))
		if t.sortDir == Descending {
			return result > 0
		}
		return result < 0
	})
}

func (t *Table[T]) pageCount(filteredCount int) int {
	pages := int(math.Ceil(float64(filteredCount) / float64(t.pageSize)))
	if pages < 1 {
		pages = 1
	}
	return pages
}

// compareValues compara dois valores extraídos de coluna respeitando o tipo:
// números comparam numericamente, datas cronologicamente e texto sem case
func compareValues(a, b any) int {
	if af, aok := toFloat(a); aok {
		if bf, bok := toFloat(b); bok {
			switch {
			case af < bf:
				return -1
			case af > bf:
				return 1
			default:
				return 0
			}
		}
	}

	if at, aok := a.(time.Time); aok {
		if bt, bok := b.(time.Time); bok {
			switch {
			case at.Before(bt):
				return -1
			case at.After(bt):
				return 1
			default:
				return 0
			}
		}
	}

	return strings.Compare(strings.ToLower(valueText(a)), strings.ToLower(valueText(b)))
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}

// valueText converte um valor de campo ou coluna para o texto usado na busca
func valueText(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case time.Time:
		return v.Format(time.RFC3339)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
