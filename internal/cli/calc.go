package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/segyhp/islamicfin-engine/internal/domain"
	"github.com/segyhp/islamicfin-engine/internal/service"
	"github.com/segyhp/islamicfin-engine/internal/validation"

	"github.com/spf13/cobra"
)

type runner func(ctx context.Context, svc *service.CalculatorService, body []byte) (interface{}, error)

func operation[Req any, Res any](fn func(*service.CalculatorService) func(context.Context, *Req) (*Res, error)) runner {
	return func(ctx context.Context, svc *service.CalculatorService, body []byte) (interface{}, error) {
		var req Req
		domain.Prefill(&req)
		if err := json.Unmarshal(body, &req); err != nil {
			return nil, fmt.Errorf("invalid request JSON: %w", err)
		}
		return fn(svc)(ctx, &req)
	}
}

var runners = map[string]runner{
	service.OpZakat: operation(func(s *service.CalculatorService) func(context.Context, *domain.ZakatRequest) (*domain.ZakatResult, error) {
		return s.Zakat
	}),
	service.OpLeasing: operation(func(s *service.CalculatorService) func(context.Context, *domain.LeasingRequest) (*domain.LeasingResult, error) {
		return s.Leasing
	}),
	service.OpRateConversion: operation(func(s *service.CalculatorService) func(context.Context, *domain.RateConversionRequest) (*domain.RateConversion, error) {
		return s.ConvertRate
	}),
	service.OpMudarabah: operation(func(s *service.CalculatorService) func(context.Context, *domain.MudarabahRequest) (*domain.MudarabahResult, error) {
		return s.Mudarabah
	}),
	service.OpRatioCheck: operation(func(s *service.CalculatorService) func(context.Context, *domain.RatioCheckRequest) (*domain.RatioCheck, error) {
		return s.CheckRatios
	}),
	service.OpMurabaha: operation(func(s *service.CalculatorService) func(context.Context, *domain.MurabahaRequest) (*domain.MurabahaResult, error) {
		return s.Murabaha
	}),
	service.OpIstisna: operation(func(s *service.CalculatorService) func(context.Context, *domain.IstisnaRequest) (*domain.IstisnaResult, error) {
		return s.Istisna
	}),
	service.OpQardHasan: operation(func(s *service.CalculatorService) func(context.Context, *domain.QardHasanRequest) (*domain.QardHasanResult, error) {
		return s.QardHasan
	}),
	service.OpTakaful: operation(func(s *service.CalculatorService) func(context.Context, *domain.TakafulRequest) (*domain.TakafulResult, error) {
		return s.Takaful
	}),
	service.OpPension: operation(func(s *service.CalculatorService) func(context.Context, *domain.PensionRequest) (*domain.PensionResult, error) {
		return s.Pension
	}),
	service.OpPartnership: operation(func(s *service.CalculatorService) func(context.Context, *domain.PartnershipRequest) (*domain.PartnershipResult, error) {
		return s.Partnership
	}),
}

func newCalcCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calc OPERATION",
		Short: "Run one calculation",
		Long: `Run one calculation. The request JSON is read from --file, or from
stdin when no file is given. See "islamicfin operations" for names.`,
		Args: cobra.ExactArgs(1),
		RunE: runCalc,
	}
	cmd.Flags().StringP("file", "f", "", "Request JSON file (default stdin)")
	return cmd
}

func runCalc(cmd *cobra.Command, args []string) error {
	run, ok := runners[args[0]]
	if !ok {
		return fmt.Errorf("unknown operation %q, use one of %v", args[0], operationNames())
	}

	body, err := readInput(cmd)
	if err != nil {
		return err
	}

	_, zl, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	svc := service.NewCalculatorService(validation.New(), nil, zl)
	result, err := run(cmd.Context(), svc, body)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), result)
}

func readInput(cmd *cobra.Command) ([]byte, error) {
	path, _ := cmd.Flags().GetString("file")
	if path == "" || path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read request: %w", err)
	}
	return body, nil
}

func printJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func operationNames() []string {
	names := make([]string, 0, len(runners))
	for name := range runners {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func newOperationsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "operations",
		Short: "List calculator operations",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range operationNames() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}
