package savegame

import (
	"bufio"
	"bytes"
	"math"
	"strconv"
	"strings"

	"github.com/KirkDiggler/battle-arena/internal/entities"
	"github.com/KirkDiggler/battle-arena/internal/errors"
)

// NoItemEquipped is written in place of an equipped index when the slot is
// empty.
const NoItemEquipped = -1

// recordLines is the number of lines in an encoded record
const recordLines = 11

// Record is everything needed to resume a game.
// Player holds base stats only; entity IDs are not persisted.
type Record struct {
	Job           string
	Player        entities.Entity
	EquippedIndex int
	EnemyIndex    int
	Enemy         entities.Entity
}

// MarshalText encodes the record one field per line:
// job, player name/health/attack/defense, equipped index, enemy index,
// enemy name/health/attack/defense.
func (r *Record) MarshalText() ([]byte, error) {
	for field, value := range map[string]string{
		"job":         r.Job,
		"player_name": r.Player.Name,
		"enemy_name":  r.Enemy.Name,
	} {
		if strings.ContainsAny(value, "\r\n") {
			return nil, errors.InvalidArgumentf("%s cannot contain a line break", field)
		}
	}

	lines := []string{r.Job}
	lines = append(lines, entityLines(&r.Player)...)
	lines = append(lines,
		strconv.Itoa(r.EquippedIndex),
		strconv.Itoa(r.EnemyIndex),
	)
	lines = append(lines, entityLines(&r.Enemy)...)

	var buf bytes.Buffer
	for _, line := range lines {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

// UnmarshalText decodes a record written by MarshalText.
// Returns errors.DataLoss for missing lines or unparsable numbers; r is only
// written when the whole record decodes.
func (r *Record) UnmarshalText(data []byte) error {
	lines := make([]string, 0, recordLines)
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return errors.WrapWithCode(err, errors.CodeDataLoss, "failed to read save record")
	}

	for len(lines) > recordLines && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) != recordLines {
		return errors.DataLossf("save record has %d lines, expected %d", len(lines), recordLines).
			WithMeta("lines", len(lines))
	}

	p := &lineParser{lines: lines}
	decoded := Record{Job: p.text()}
	p.entity(&decoded.Player)
	decoded.EquippedIndex = p.integer()
	decoded.EnemyIndex = p.integer()
	p.entity(&decoded.Enemy)

	if p.err != nil {
		return p.err
	}

	*r = decoded
	return nil
}

func entityLines(e *entities.Entity) []string {
	return []string{
		e.Name,
		formatFloat(e.Health),
		formatFloat(e.AttackPower),
		formatFloat(e.DefensePower),
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// lineParser reads record lines in order and keeps the first error.
type lineParser struct {
	lines []string
	pos   int
	err   error
}

func (p *lineParser) text() string {
	line := p.lines[p.pos]
	p.pos++
	return line
}

func (p *lineParser) integer() int {
	lineNo := p.pos + 1
	raw := p.text()
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil && p.err == nil {
		p.err = errors.WrapWithCodef(err, errors.CodeDataLoss, "line %d: %q is not a whole number", lineNo, raw).
			WithMeta("line", lineNo)
	}
	return v
}

func (p *lineParser) float() float64 {
	lineNo := p.pos + 1
	raw := p.text()
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if p.err != nil {
		return v
	}
	if err != nil {
		p.err = errors.WrapWithCodef(err, errors.CodeDataLoss, "line %d: %q is not a number", lineNo, raw).
			WithMeta("line", lineNo)
		return v
	}
	// NaN health can never reach zero
	if math.IsNaN(v) || math.IsInf(v, 0) {
		p.err = errors.DataLossf("line %d: %q is not a finite number", lineNo, raw).
			WithMeta("line", lineNo)
	}
	return v
}

func (p *lineParser) entity(e *entities.Entity) {
	e.Name = p.text()
	e.Health = p.float()
	e.AttackPower = p.float()
	e.DefensePower = p.float()
}
