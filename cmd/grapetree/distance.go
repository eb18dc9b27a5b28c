package main

import (
	"encoding/json"
	"fmt"

	"github.com/cgmlst/grapetree/facade"
	"github.com/spf13/cobra"
)

var (
	distanceInput          string
	distanceMatrixType     string
	distanceMissingHandler int
)

var distanceCmd = &cobra.Command{
	Use:   "distance",
	Short: "Compute a pairwise distance matrix from an allelic profile batch",
	RunE:  runDistance,
}

func init() {
	distanceCmd.Flags().StringVarP(&distanceInput, "input", "i", "-", "profile batch JSON file, or - for stdin")
	distanceCmd.Flags().StringVar(&distanceMatrixType, "matrix-type", "", "symmetric or asymmetric (defaults from config)")
	distanceCmd.Flags().IntVar(&distanceMissingHandler, "missing-handler", -1, "0=IGNORE 1=REMOVE_COLUMN 2=TREAT_AS_ALLELE 3=ABSOLUTE_DIFF")
}

func runDistance(cmd *cobra.Command, args []string) error {
	raw, err := readInput(distanceInput)
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

	matrixType := distanceMatrixType
	if matrixType == "" {
		matrixType = viperCfg.GetString("matrix_type")
	}
	handler := distanceMissingHandler
	if handler < 0 {
		handler = viperCfg.GetInt("missing_handler")
	}

	req := facade.Request{
		Strains:        batch.Strains,
		Profiles:       batch.Profiles,
		MatrixType:     matrixType,
		MissingHandler: handler,
	}

	reqJSON, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("grapetree: encoding request: %w", err)
	}

	resp := facade.ComputeDistanceMatrix(logger, reqJSON)

	return writeResponse(cmd, resp)
}
