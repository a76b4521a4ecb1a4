package violation

import "os"

func write() error {
	if err := os.WriteFile("out.cpp", nil, 0o644); err != nil {
		return err
	}
	f, err := os.Create("other.cpp")
	if err != nil {
		return err
	}
	_ = f.Close()

	// Reading is fine.
	_, err = os.ReadFile("in.json")
	return err
}
