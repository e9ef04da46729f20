package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harrison/agentpulse/internal/filelock"
	"github.com/harrison/agentpulse/internal/rename"
)

// NewRenameCommand creates the rename command
func NewRenameCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename",
		Short: "Rename placeholder agents to real model names",
		Long: `Rewrite the placeholder agent identifiers in agent_activity.json and
collaboration_network.json to the fixed roster of real model names, in
place.

Renaming is positional: the i-th activity record gets the i-th real name,
and network ids of the form "Agent <index>" map by numeric suffix. Names
that do not match the placeholder pattern are left unchanged, so running
rename a second time is a no-op.`,
		Args: cobra.NoArgs,
		RunE: runRename,
	}

	addCommonFlags(cmd)
	return cmd
}

func runRename(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log := newLogger(cfg)

	lock, err := filelock.LockDir(cfg.DataDir)
	if err != nil {
		return err
	}
	defer lock.Unlock()

	result, err := rename.Apply(cfg.DataDir)
	if err != nil {
		return err
	}

	log.Debugf("renamed %d activity records, %d nodes, %d edge endpoints",
		result.AgentsRenamed, result.NodesRenamed, result.EdgesRenamed)
	fmt.Fprintf(cmd.OutOrStdout(), "Updated %d agent names\n", result.AgentsRenamed)
	fmt.Fprintln(cmd.OutOrStdout(), "Updated collaboration network agent names")
	return nil
}
