package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// newSessionCmd sirve para soporte técnico: ver o vaciar la sesión guardada.
// Con --all trabaja sobre todas las claves de la base local.
func newSessionCmd(f *flags) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "session",
		Short: "Inspeccionar la sesión guardada del paciente",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Imprimir los medicamentos guardados como JSON",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(c, f)
			if err != nil {
				return err
			}
			log, err := newLogger(cfg)
			if err != nil {
				return err
			}
			db, repo, store, err := openSession(c.Context(), cfg, log)
			if err != nil {
				return err
			}
			defer db.Close()

			enc := json.NewEncoder(c.OutOrStdout())
			enc.SetIndent("", "  ")
			if !all {
				return enc.Encode(store.Load(c.Context()))
			}

			entries, err := repo.List(c.Context())
			if err != nil {
				return err
			}
			out := make(map[string]any, len(entries))
			for k, v := range entries {
				if json.Valid(v) {
					out[k] = json.RawMessage(v)
				} else {
					out[k] = string(v)
				}
			}
			return enc.Encode(out)
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Borrar la sesión guardada",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(c, f)
			if err != nil {
				return err
			}
			log, err := newLogger(cfg)
			if err != nil {
				return err
			}
			db, repo, store, err := openSession(c.Context(), cfg, log)
			if err != nil {
				return err
			}
			defer db.Close()

			if all {
				err = repo.Clear(c.Context())
			} else {
				err = store.Clear(c.Context())
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(c.OutOrStdout(), "sesión borrada")
			return nil
		},
	}

	cmd.PersistentFlags().BoolVar(&all, "all", false, "todas las claves de la base local, no solo la sesión")
	cmd.AddCommand(show, clearCmd)
	return cmd
}
