// Package seeds loads a small demo docket so the shell has something to
// render against a fresh database.
package seeds

func SeedAll() error {
	if err := SeedPlats(); err != nil {
		return err
	}
	if err := SeedWells(); err != nil {
		return err
	}
	if err := SeedBoardMatters(); err != nil {
		return err
	}
	return nil
}
