// Package cmd - estimate command
package cmd

import (
	"fmt"
	"math"
	"time"

	"github.com/spf13/cobra"

	"moverz/core/attribution"
	"moverz/core/baseline"
	"moverz/core/fee"
	"moverz/core/move"
	"moverz/core/pricing"
	"moverz/core/routing"
	"moverz/core/tariff"
)

var (
	surfaceM2        float64
	housingFlag      string
	densityFlag      string
	distanceKm       float64
	dateFlag         string
	originFloor      int
	destFloor        int
	originElevator   string
	destElevator     string
	tierFlag         string
	furnitureLift    bool
	pianoFlag        string
	debarras         bool
	longCarry        bool
	tightAccess      bool
	difficultParking bool
	applianceCount   string
	showBreakdown    bool
)

// estimateCmd represents the estimate command
var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Price one move",
	Long: `Price a move from its description and print the per-tier quote,
the platform provision and, with --breakdown, the attribution lines from
the first estimate to the refined one.`,
	RunE: runEstimate,
}

func init() {
	estimateCmd.Flags().Float64Var(&surfaceM2, "surface", 0, "dwelling surface in m2 (required)")
	estimateCmd.Flags().StringVar(&housingFlag, "housing", "", "housing type: studio, t1..t5, house, house_multi (required)")
	estimateCmd.Flags().StringVar(&densityFlag, "density", "normal", "furnishing density: light, normal, dense")
	estimateCmd.Flags().Float64Var(&distanceKm, "distance", -1, "routed distance in km (required)")
	estimateCmd.Flags().StringVar(&dateFlag, "date", "", "moving date (2006-01-02)")
	estimateCmd.Flags().IntVar(&originFloor, "origin-floor", 0, "origin floor")
	estimateCmd.Flags().IntVar(&destFloor, "dest-floor", 0, "destination floor")
	estimateCmd.Flags().StringVar(&originElevator, "origin-elevator", "yes", "origin elevator: yes, no, partial")
	estimateCmd.Flags().StringVar(&destElevator, "dest-elevator", "yes", "destination elevator: yes, no, partial")
	estimateCmd.Flags().StringVar(&tierFlag, "tier", "STANDARD", "formule: ECONOMIQUE, STANDARD, PREMIUM")
	estimateCmd.Flags().BoolVar(&furnitureLift, "furniture-lift", false, "add a furniture lift")
	estimateCmd.Flags().StringVar(&pianoFlag, "piano", "none", "piano transport: none, upright, grand")
	estimateCmd.Flags().BoolVar(&debarras, "debarras", false, "add debris removal")
	estimateCmd.Flags().BoolVar(&longCarry, "long-carry", false, "long carry between truck and door")
	estimateCmd.Flags().BoolVar(&tightAccess, "tight-access", false, "narrow stairs or corridors")
	estimateCmd.Flags().BoolVar(&difficultParking, "difficult-parking", false, "truck cannot park near the entrance")
	estimateCmd.Flags().StringVar(&applianceCount, "appliances", "0", "kitchen appliance count")
	estimateCmd.Flags().BoolVar(&showBreakdown, "breakdown", false, "print the attribution breakdown")

	_ = estimateCmd.MarkFlagRequired("surface")
	_ = estimateCmd.MarkFlagRequired("housing")
	_ = estimateCmd.MarkFlagRequired("distance")
}

func runEstimate(cmd *cobra.Command, args []string) error {
	t := tariff.Default()
	if tariffFile != "" {
		loaded, err := tariff.LoadHCL(tariffFile)
		if err != nil {
			return err
		}
		t = loaded
	}
	engine := pricing.NewEngine(t)

	housing, ok := move.NormalizeHousing(housingFlag)
	if !ok {
		return fmt.Errorf("unknown housing type %q", housingFlag)
	}
	tier, ok := move.NormalizeTier(tierFlag)
	if !ok {
		return fmt.Errorf("unknown tier %q", tierFlag)
	}

	req := move.Request{
		SurfaceM2:           surfaceM2,
		Housing:             housing,
		Density:             move.NormalizeDensity(densityFlag),
		OriginFloor:         originFloor,
		DestinationFloor:    destFloor,
		OriginElevator:      move.NormalizeElevator(originElevator),
		DestinationElevator: move.NormalizeElevator(destElevator),
		Tier:                tier,
		Services: move.Services{
			FurnitureLift: furnitureLift,
			Piano:         move.NormalizePiano(pianoFlag),
			Debarras:      debarras,
		},
		Access: move.AccessFlags{
			LongCarry:        longCarry,
			TightAccess:      tightAccess,
			DifficultParking: difficultParking,
		},
		ExtraVolumeM3: float64(move.CoerceCount(applianceCount)) * t.ApplianceVolumeM3,
	}
	if distanceKm >= 0 {
		req = req.WithDistance(distanceKm)
	}
	if dateFlag != "" {
		date, err := time.Parse("2006-01-02", dateFlag)
		if err != nil {
			return fmt.Errorf("invalid date %q: %w", dateFlag, err)
		}
		req = req.WithDate(date)
	}

	result := engine.Compute(req)
	if result == nil {
		fmt.Println("Not priceable yet: check surface (10-500 m2) and distance.")
		return nil
	}

	fmt.Printf("Volume estimé : %.1f m³\n", result.VolumeM3)
	fmt.Printf("Prix (%s) : %s € - fourchette %s € à %s €\n",
		tier, result.PriceFinal, result.PriceMin, result.PriceMax)
	fmt.Printf("Dont services : %s €\n", result.ServicesTotal)
	fmt.Printf("Provision Moverz : %s €\n\n", fee.Provision(pricing.DisplayedCenter(result), t))

	fmt.Println("Par formule :")
	for _, tr := range move.AllTiers() {
		tierReq := req
		tierReq.Tier = tr
		tierRes := engine.Compute(tierReq)
		if tierRes == nil {
			continue
		}
		fmt.Printf("  %-11s %s € (%s € à %s €)\n", tr, tierRes.PriceFinal, tierRes.PriceMin, tierRes.PriceMax)
	}

	if showBreakdown {
		printBreakdown(engine, req, tier)
	}
	return nil
}

func printBreakdown(engine *pricing.Engine, req move.Request, tier move.Tier) {
	frozen := baseline.Estimate(engine, req.SurfaceM2, math.Max(*req.DistanceKm-engine.Tariff().BaselineBufferKm, 0), req.Housing, move.TierStandard)
	if frozen == nil {
		return
	}

	in := attribution.Input{
		Request:            req,
		BaselineDistanceKm: frozen.DistanceKm,
		Confirmed: attribution.Confirmations{
			DistanceSource:    routing.SourceOSRM,
			Density:           true,
			Kitchen:           true,
			Date:              req.MovingDate != nil,
			AccessHousing:     true,
			AccessConstraints: true,
			Formule:           true,
		},
	}
	lines, final := attribution.Attribute(engine, in, frozen.Center)
	if final == nil {
		return
	}

	fmt.Printf("\nPremière estimation : %s €\n", frozen.Center)
	for _, line := range lines {
		if !line.Confirmed {
			continue
		}
		fmt.Printf("  %-26s %+8s €   (%s)\n", line.Label, line.AmountEur, line.Status)
	}
	fmt.Printf("Estimation affinée : %s €\n", pricing.DisplayedCenter(final))
}
