package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/utkarsh5026/coderoast/cmd/ui"
	"github.com/utkarsh5026/coderoast/pkg/classify"
	"github.com/utkarsh5026/coderoast/pkg/coderoast"
	"github.com/utkarsh5026/coderoast/pkg/intercept"
	"github.com/utkarsh5026/coderoast/pkg/level"
)

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walk through the CodeRoast API",
		Long: `Run a guided tour: wrapped functions failing, the insult API, custom
insults and the three roast levels. Narration goes to stdout and roasts to
the configured output stream.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := &demo{out: cmd.OutOrStdout(), instance: a.roaster}
			return d.run()
		},
	}
}

type demo struct {
	out      io.Writer
	instance *coderoast.Instance
}

func (d *demo) run() error {
	steps := []struct {
		title string
		fn    func() error
	}{
		{"Wrapped Functions", d.wrapped},
		{"Insults API", d.insults},
		{"Level Wrapper", d.levelWrapper},
		{"Custom Insults", d.custom},
		{"Roast Levels", d.levels},
		{"Deactivation", d.deactivation},
		{"Error Kinds", d.errorKinds},
	}

	fmt.Fprintln(d.out, ui.InfoMessage("Narration goes here; roasts go to the configured output stream."))
	fmt.Fprintln(d.out)

	for _, step := range steps {
		fmt.Fprintln(d.out, ui.Section(step.title))
		if err := step.fn(); err != nil {
			return fmt.Errorf("demo step %q: %w", step.title, err)
		}
		fmt.Fprintln(d.out)
	}

	fmt.Fprintln(d.out, ui.SuccessMessage("Demo complete"))
	return nil
}

func (d *demo) wrapped() error {
	w := d.instance.Wrapper()

	divide := intercept.Wrap1(w, func(n int) (int, error) {
		return 10 / n, nil
	})
	if v := recoverValue(func() { divide(0) }); v != nil {
		fmt.Fprintln(d.out, ui.Bullet("divide(0) panicked and was roasted: "+fmt.Sprint(v)))
	}

	parse := intercept.Wrap1(w, strconv.Atoi)
	if _, err := parse("forty-two"); err != nil {
		fmt.Fprintln(d.out, ui.Bullet(ui.ErrorMessage("parse(\"forty-two\") returned: "+err.Error())))
	}

	ok := coderoast.RoastFunction(func() error { return nil })
	if err := ok(); err == nil {
		fmt.Fprintln(d.out, ui.Bullet("a function that succeeds is left alone"))
	}
	return nil
}

func (d *demo) insults() error {
	text, err := coderoast.GetInsult()
	if err != nil {
		return err
	}
	fmt.Fprintln(d.out, ui.FormatInsult(text, "random"))

	text, err = coderoast.GetInsultByCategory("syntax")
	if err != nil {
		return err
	}
	fmt.Fprintln(d.out, ui.FormatInsult(text, "syntax"))

	text, err = coderoast.GetInsultByError(classify.KindDivideByZero)
	if err != nil {
		return err
	}
	fmt.Fprintln(d.out, ui.FormatInsult(text, string(classify.KindDivideByZero)))

	fmt.Fprintln(d.out, ui.Bullet(fmt.Sprintf("%d categories available", len(coderoast.GetAvailableCategories()))))
	return nil
}

func (d *demo) levelWrapper() error {
	open, err := coderoast.RoastFunctionWithLevel(coderoast.Brutal, func() error {
		f, err := os.Open(filepath.Join(os.TempDir(), "coderoast-definitely-missing.txt"))
		if err != nil {
			return err
		}
		return f.Close()
	})
	if err != nil {
		return err
	}

	before := coderoast.GetRoastLevel()
	if err := open(); errors.Is(err, os.ErrNotExist) {
		fmt.Fprintln(d.out, ui.Bullet("opening a missing file was roasted at "+ui.LevelBadge(coderoast.Brutal)))
	}
	fmt.Fprintln(d.out, ui.Bullet("level afterwards: "+ui.LevelBadge(coderoast.GetRoastLevel())))
	if after := coderoast.GetRoastLevel(); after != before {
		return fmt.Errorf("level wrapper leaked %s, expected %s", after, before)
	}
	return nil
}

func (d *demo) custom() error {
	added := coderoast.AddInsults([]string{"Your code has more bugs than a rainforest."})
	fmt.Fprintln(d.out, ui.Bullet(fmt.Sprintf("added %d generic insult", added)))

	added = coderoast.AddCategorizedInsult("logic", []string{
		"Your logic is so circular it has its own orbit.",
	})
	fmt.Fprintln(d.out, ui.Bullet(fmt.Sprintf("added %d insult to the new logic category", added)))

	text, err := coderoast.GetInsultByCategory("logic")
	if err != nil {
		return err
	}
	fmt.Fprintln(d.out, ui.InsultBox(text))
	return nil
}

func (d *demo) levels() error {
	original := coderoast.GetRoastLevel()
	defer coderoast.SetRoastLevel(original)

	for _, lvl := range level.All() {
		if err := coderoast.SetRoastLevel(lvl); err != nil {
			return err
		}
		text, err := coderoast.GetInsult()
		if err != nil {
			return err
		}
		fmt.Fprintf(d.out, "%s %s\n", ui.LevelBadge(lvl), ui.Yellow(text))
	}
	return nil
}

func (d *demo) deactivation() error {
	wasActive := coderoast.IsActive()
	defer func() {
		if wasActive {
			coderoast.Activate()
		} else {
			coderoast.Deactivate()
		}
	}()

	fmt.Fprintln(d.out, ui.Bullet(fmt.Sprintf("active: %t", coderoast.IsActive())))

	coderoast.Deactivate()
	fmt.Fprintln(d.out, ui.Bullet(fmt.Sprintf("after Deactivate, active: %t", coderoast.IsActive())))

	quiet := coderoast.RoastFunction(func() error {
		return errors.New("nobody will roast this")
	})
	if err := quiet(); err != nil {
		fmt.Fprintln(d.out, ui.Bullet("the error passed through unroasted: "+err.Error()))
	}

	coderoast.Activate()
	fmt.Fprintln(d.out, ui.Bullet(fmt.Sprintf("after Activate, active: %t", coderoast.IsActive())))
	return nil
}

func (d *demo) errorKinds() error {
	w := d.instance.Wrapper()

	decode := intercept.Wrap1(w, func(s string) (map[string]any, error) {
		var v map[string]any
		return v, json.Unmarshal([]byte(s), &v)
	})
	if _, err := decode("{not json"); err != nil {
		fmt.Fprintln(d.out, ui.Bullet("syntax: "+err.Error()))
	}

	toInt := intercept.Wrap1(w, func(v any) (int, error) {
		return v.(int), nil
	})
	if v := recoverValue(func() { toInt("forty-two") }); v != nil {
		fmt.Fprintln(d.out, ui.Bullet("type: "+fmt.Sprint(v)))
	}

	read := intercept.Wrap1(w, os.ReadFile)
	if _, err := read(filepath.Join(os.TempDir(), "coderoast-no-such-file.txt")); err != nil {
		fmt.Fprintln(d.out, ui.Bullet("file: "+err.Error()))
	}
	return nil
}

// recoverValue runs fn and returns what it panicked with, or nil.
func recoverValue(fn func()) (v any) {
	defer func() { v = recover() }()
	fn()
	return nil
}
