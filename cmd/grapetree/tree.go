package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cgmlst/grapetree/facade"
	"github.com/spf13/cobra"
)

var (
	treeInput          string
	treeMethod         string
	treeMatrixType     string
	treeMissingHandler int
	treeHeuristic      string
)

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Build a phylogenetic tree from an allelic profile batch",
	RunE:  runTree,
}

func init() {
	treeCmd.Flags().StringVarP(&treeInput, "input", "i", "-", "profile batch JSON file, or - for stdin")
	treeCmd.Flags().StringVar(&treeMethod, "method", "MSTreeV2", "tree builder: MSTree or MSTreeV2")
	treeCmd.Flags().StringVar(&treeMatrixType, "matrix-type", "", "symmetric or asymmetric (defaults from config)")
	treeCmd.Flags().IntVar(&treeMissingHandler, "missing-handler", -1, "0=IGNORE 1=REMOVE_COLUMN 2=TREAT_AS_ALLELE 3=ABSOLUTE_DIFF")
	treeCmd.Flags().StringVar(&treeHeuristic, "heuristic", "", "eBurst or harmonic, MSTree only (defaults from config)")
}

func runTree(cmd *cobra.Command, args []string) error {
	raw, err := readInput(treeInput)
	if err != nil {
		return err
	}

	var batch struct {
		Strains  []string `json:"strains"`
		Profiles [][]int  `json:"profiles"`
	}
	if err := json.Unmarshal(raw, &batch); err != nil {
		return fmt.Errorf("grapetree: parsing profile batch: %w", err)
	}

	matrixType := treeMatrixType
	if matrixType == "" {
		matrixType = viperCfg.GetString("matrix_type")
	}
	heuristic := treeHeuristic
	if heuristic == "" {
		heuristic = viperCfg.GetString("heuristic")
	}
	handler := treeMissingHandler
	if handler < 0 {
		handler = viperCfg.GetInt("missing_handler")
	}

	req := facade.Request{
		Strains:        batch.Strains,
		Profiles:       batch.Profiles,
		Method:         treeMethod,
		MatrixType:     matrixType,
		MissingHandler: handler,
		Heuristic:      heuristic,
	}

	reqJSON, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("grapetree: encoding request: %w", err)
	}

	resp := facade.ComputeTree(logger, reqJSON)

	return writeResponse(cmd, resp)
}

func writeResponse(cmd *cobra.Command, resp any) error {
	out, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return fmt.Errorf("grapetree: encoding response: %w", err)
	}

	fmt.Fprintln(os.Stdout, string(out))
	return nil
}
