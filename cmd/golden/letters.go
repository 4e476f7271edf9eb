package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/golden/internal/core"
	"github.com/vovakirdan/golden/internal/registry"
	"github.com/vovakirdan/golden/internal/session"
)

var lettersCmd = &cobra.Command{
	Use:   "letters",
	Short: "Show the letters table of an engine",
	Long: `Prints every letter code of the selected engine with its character and
score, and the golden word drawn for the configured seed.`,
	Run: runLetters,
}

func runLetters(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fail("%v", err)
	}

	eng, err := registry.Create(cfg.Session.Engine, cfg.RuntimeConfig())
	if err != nil {
		fail("%v", err)
	}

	letters := session.NewLetterService()
	letters.Bind(eng.Letters())
	golden := session.NewGoldenWord(eng.GoldenWord())

	rows, err := letterRows(letters)
	if err != nil {
		fail("%v", err)
	}

	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)
	gold := cell.Foreground(lipgloss.Color("11"))

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Code", "Letter", "Score").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return header
			case golden.Contains(core.LetterCode(row)):
				return gold
			}
			return cell
		})

	fmt.Println(t)
	if word, err := letters.ResolveWord(golden.Codes()); err == nil {
		w := session.ResolvedWord{Letters: word, Score: golden.Score()}
		fmt.Printf("Golden word: %s (%d)\n", w.Text(), w.Score)
	}
}

// letterRows resolves codes from zero until the table has no entry.
func letterRows(letters *session.LetterService) ([][]string, error) {
	var rows [][]string
	for code := core.LetterCode(0); !core.IsEmptyCell(code); code++ {
		l, _, err := letters.Resolve(code)
		if errors.Is(err, session.ErrLookup) {
			break
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, []string{strconv.Itoa(int(l.Code)), l.Char, strconv.Itoa(l.Score)})
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("engine has no letters")
	}
	return rows, nil
}
