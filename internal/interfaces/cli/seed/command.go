package seed

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	subdto "github.com/darna-inc/darna/internal/application/subscription/dto"
	"github.com/darna-inc/darna/internal/application/subscription/usecases"
	"github.com/darna-inc/darna/internal/domain/subscription"
	"github.com/darna-inc/darna/internal/infrastructure/database"
	"github.com/darna-inc/darna/internal/infrastructure/repository"
	"github.com/darna-inc/darna/internal/interfaces/cli/cmdutil"
	"github.com/darna-inc/darna/internal/shared/logger"
)

var (
	env      string
	planFile string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed reference data",
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	plans := &cobra.Command{
		Use:   "plans",
		Short: "Create the subscription plans listed in a YAML file",
		Long:  `Create every plan from the file whose name is not in the catalog yet. Existing plans are left untouched.`,
		RunE:  runPlans,
	}
	plans.Flags().StringVarP(&planFile, "file", "f", "configs/plans.example.yaml", "YAML plan catalog")
	cmd.AddCommand(plans)

	return cmd
}

// PlanSpec is one plan entry of the catalog file.
type PlanSpec struct {
	Name          string   `yaml:"name"`
	Description   string   `yaml:"description"`
	Price         string   `yaml:"price"`
	MaxProperties int      `yaml:"max_properties"`
	Features      []string `yaml:"features"`
}

type planFileDoc struct {
	Plans []PlanSpec `yaml:"plans"`
}

// ParsePlans decodes a plan catalog document.
func ParsePlans(r io.Reader) ([]PlanSpec, error) {
	var doc planFileDoc
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse plan file: %w", err)
	}
	for i, p := range doc.Plans {
		if strings.TrimSpace(p.Name) == "" {
			return nil, fmt.Errorf("plan #%d has no name", i+1)
		}
	}
	return doc.Plans, nil
}

func (p PlanSpec) command() (usecases.CreatePlanCommand, error) {
	price := decimal.Zero
	if p.Price != "" {
		parsed, err := decimal.NewFromString(p.Price)
		if err != nil {
			return usecases.CreatePlanCommand{}, fmt.Errorf("plan %q: invalid price %q", p.Name, p.Price)
		}
		price = parsed
	}
	maxProperties := p.MaxProperties
	if maxProperties == 0 {
		maxProperties = 1
	}
	return usecases.CreatePlanCommand{
		Name:          p.Name,
		Description:   p.Description,
		Price:         price,
		MaxProperties: maxProperties,
		Features:      p.Features,
	}, nil
}

func runPlans(cmd *cobra.Command, _ []string) error {
	f, err := os.Open(planFile)
	if err != nil {
		return fmt.Errorf("failed to open plan file: %w", err)
	}
	defer f.Close()

	specs, err := ParsePlans(f)
	if err != nil {
		return err
	}

	_, log, db, err := cmdutil.Bootstrap(cmd.Context(), cmdutil.Environment(env))
	if err != nil {
		return err
	}
	defer database.Close()

	planRepo := repository.NewPlanRepository(db, log)
	created, skipped, err := SeedPlans(cmd.Context(), planRepo, usecases.NewCreatePlanUseCase(planRepo, log), specs, log)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "plans created: %d, already present: %d\n", created, skipped)
	return nil
}

// PlanLister lists the current catalog.
type PlanLister interface {
	List(ctx context.Context, filter subscription.PlanFilter) ([]*subscription.Plan, int64, error)
}

// PlanCreator creates one plan.
type PlanCreator interface {
	Execute(ctx context.Context, cmd usecases.CreatePlanCommand) (*subdto.PlanDTO, error)
}

// SeedPlans creates the plans whose names are not taken yet. Names compare
// case-insensitively.
func SeedPlans(ctx context.Context, lister PlanLister, creator PlanCreator, specs []PlanSpec, log logger.Interface) (created, skipped int, err error) {
	existing := make(map[string]struct{})
	for offset := 0; ; {
		plans, total, err := lister.List(ctx, subscription.PlanFilter{Offset: offset, Limit: 100})
		if err != nil {
			return 0, 0, fmt.Errorf("failed to list plans: %w", err)
		}
		for _, p := range plans {
			existing[strings.ToLower(p.Name())] = struct{}{}
		}
		offset += len(plans)
		if len(plans) == 0 || int64(offset) >= total {
			break
		}
	}

	for _, spec := range specs {
		key := strings.ToLower(strings.TrimSpace(spec.Name))
		if _, ok := existing[key]; ok {
			skipped++
			continue
		}
		planCmd, err := spec.command()
		if err != nil {
			return created, skipped, err
		}
		if _, err := creator.Execute(ctx, planCmd); err != nil {
			return created, skipped, fmt.Errorf("failed to create plan %q: %w", spec.Name, err)
		}
		existing[key] = struct{}{}
		created++
		log.Infow("seeded plan", "name", spec.Name)
	}
	return created, skipped, nil
}
