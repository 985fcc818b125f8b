package cli

import (
	"errors"
	"fmt"

	"tubeqr/internal/discovery"
)

func runDoctor(env Env, jsonOut bool) error {
	res, err := discovery.Doctor(discovery.DoctorOptions{WorkDir: env.WorkDir})
	if err != nil {
		return err
	}
	if jsonOut {
		if err := printJSON(env.Stdout, res); err != nil {
			return err
		}
		if !res.OK {
			return errors.New("doctor checks failed")
		}
		return nil
	}

	for _, c := range res.Checks {
		status := "ok"
		if !c.OK {
			status = "fail"
		}
		fmt.Fprintf(env.Stdout, "%s: %s (%s)\n", c.Name, status, c.Message)
	}
	if !res.OK {
		return errors.New("doctor checks failed")
	}
	fmt.Fprintln(env.Stdout, "doctor: all checks passed")
	return nil
}
