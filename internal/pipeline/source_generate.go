package pipeline

import (
	"io"
	"math/rand"
	"time"

	"student-data-processor/internal/model"
)

const nameCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

const (
	scoreMin = 55
	scoreMax = 75
)

var (
	dobStart = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	dobEnd   = time.Date(2010, 12, 31, 0, 0, 0, 0, time.UTC)
)

// generatorSource produces n synthetic student records with sequential
// ids. The requested count is clamped to the xlsx row capacity.
type generatorSource struct {
	total int64
	next  int64
	rnd   *rand.Rand
}

// NewGenerator returns a source of min(n, MaxSheetRows) random records.
func NewGenerator(n int64) Source {
	return &generatorSource{
		total: ClampRows(n),
		next:  1,
		rnd:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (g *generatorSource) Next() (model.StudentRecord, error) {
	if g.next > g.total {
		return model.StudentRecord{}, io.EOF
	}

	rec := model.StudentRecord{
		StudentID: g.next,
		FirstName: g.randomName(3, 8),
		LastName:  g.randomName(3, 8),
		DOB:       g.randomDOB(),
		Class:     model.Classes[g.rnd.Intn(len(model.Classes))],
		Score:     scoreMin + g.rnd.Intn(scoreMax-scoreMin+1),
	}
	g.next++
	return rec, nil
}

func (g *generatorSource) Close() error {
	return nil
}

func (g *generatorSource) randomName(minLen, maxLen int) string {
	length := minLen + g.rnd.Intn(maxLen-minLen+1)
	b := make([]byte, length)
	for i := range b {
		b[i] = nameCharset[g.rnd.Intn(len(nameCharset))]
	}
	return string(b)
}

func (g *generatorSource) randomDOB() model.Date {
	days := int(dobEnd.Sub(dobStart).Hours() / 24)
	return model.Date{Time: dobStart.AddDate(0, 0, g.rnd.Intn(days+1))}
}
