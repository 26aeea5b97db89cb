package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakobmina/quasar-pro/internal/catalog"
	"github.com/jakobmina/quasar-pro/internal/storage"
)

var shipsCmd = &cobra.Command{
	Use:   "ships",
	Short: "List, add and delete hangar ships",
	Long: `The hangar holds the built-in hulls and your custom ships. A custom ship
starts from a built-in model and overrides its stats.

Examples:
  quasar ships
  quasar ships add --model titan --name Bulwark --thrust 0.3 --defense 2.5
  quasar ships delete custom_1b9d6bcd-bbfd-4b2d-9b5d-ab8dfbbd4bed`,
	Args: cobra.NoArgs,
	RunE: runShipsList,
}

var shipsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a custom ship",
	Args:  cobra.NoArgs,
	RunE:  runShipsAdd,
}

var shipsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a custom ship",
	Args:  cobra.ExactArgs(1),
	RunE:  runShipsDelete,
}

var (
	flagShipModel   string
	flagShipName    string
	flagShipColor   string
	flagShipThrust  float64
	flagShipHealth  float64
	flagShipDefense float64
	flagShipAttack  float64
)

func init() {
	f := shipsAddCmd.Flags()
	f.StringVar(&flagShipModel, "model", "interceptor", "Base hull model")
	f.StringVar(&flagShipName, "name", "", "Display name (required)")
	f.StringVar(&flagShipColor, "color", "", "Hex color, e.g. #22d3ee (default: model color)")
	f.Float64Var(&flagShipThrust, "thrust", 0, "Thrust (default: model value)")
	f.Float64Var(&flagShipHealth, "health-bonus", 0, "Integrity bonus (default: model value)")
	f.Float64Var(&flagShipDefense, "defense", 0, "Defense multiplier (default: model value)")
	f.Float64Var(&flagShipAttack, "attack", 0, "Attack multiplier (default: model value)")
	_ = shipsAddCmd.MarkFlagRequired("name")

	shipsCmd.AddCommand(shipsAddCmd)
	shipsCmd.AddCommand(shipsDeleteCmd)
}

func runShipsList(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening ship catalog: %w", err)
	}
	defer closeStore(store)

	ships, err := store.Ships()
	if err != nil {
		return err
	}

	fmt.Println("Hangar:")
	fmt.Println()
	fmt.Printf("  %-14s  %-12s  %-6s  %-6s  %-5s  %-5s  %s\n", "Name", "Model", "Thrust", "HP", "Def", "Atk", "ID")
	fmt.Printf("  %-14s  %-12s  %-6s  %-6s  %-5s  %-5s  %s\n", "----", "-----", "------", "--", "---", "---", "--")
	for _, s := range ships {
		fmt.Printf("  %-14s  %-12s  %-6.2f  %+-6.0f  %-5.1f  %-5.1f  %s\n",
			s.Name, s.Model, s.Thrust, s.HealthBonus, s.Defense, s.AttackPower, s.ID)
	}
	fmt.Println()
	fmt.Println("Fly one with 'quasar play story --ship <id or model>'.")
	return nil
}

func runShipsAdd(cmd *cobra.Command, _ []string) error {
	model, err := catalog.ParseModel(flagShipModel)
	if err != nil {
		return err
	}
	ship, _ := catalog.Hull(model)
	ship.ID = ""
	ship.IsCustom = true
	ship.Name = flagShipName

	flags := cmd.Flags()
	if flags.Changed("color") {
		ship.Color = flagShipColor
	}
	if flags.Changed("thrust") {
		ship.Thrust = flagShipThrust
	}
	if flags.Changed("health-bonus") {
		ship.HealthBonus = flagShipHealth
	}
	if flags.Changed("defense") {
		ship.Defense = flagShipDefense
	}
	if flags.Changed("attack") {
		ship.AttackPower = flagShipAttack
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening ship catalog: %w", err)
	}
	defer closeStore(store)

	id, err := store.SaveShip(ship)
	if err != nil {
		return err
	}
	logger.Info("ship added", "id", id, "name", ship.Name, "model", ship.Model)
	return nil
}

func runShipsDelete(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening ship catalog: %w", err)
	}
	defer closeStore(store)

	if err := store.DeleteShip(args[0]); err != nil {
		return err
	}
	logger.Info("ship deleted", "id", args[0])
	return nil
}
