package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/logisticsim/config"
	"github.com/logisticsim/database"
	"github.com/logisticsim/simulation"
)

var (
	days           int    // Number of historical days to simulate
	seed           int64  // Root seed; overrides the config file value
	commitInterval int    // Ticks between batch commits; 0 keeps the config value
	configPath     string // Optional YAML simulation config
	sqlitePath     string // Generate into a SQLite file instead of Postgres
	logLevel       string // Log verbosity level
)

var rootCmd = &cobra.Command{
	Use:   "seedgen",
	Short: "Synthetic history generator for a multi-warehouse logistics network",
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Reset the database and generate a full synthetic history",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		simCfg := loadSimulationConfig(cmd)

		db := openDatabase()
		if err := database.Reset(db); err != nil {
			logrus.WithError(err).Fatal("database reset failed")
		}

		store := database.NewStore(db)
		defer store.Close()

		runner := simulation.NewRunner(store, simCfg)
		if err := runner.Run(days); err != nil {
			logrus.WithError(err).Fatal("generation failed")
		}
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Drop and recreate all tables without generating data",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		db := openDatabase()
		if err := database.Reset(db); err != nil {
			logrus.WithError(err).Fatal("database reset failed")
		}
	},
}

func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// loadSimulationConfig layers the precedence: built-in defaults, then the
// YAML file, then explicitly set CLI flags.
func loadSimulationConfig(cmd *cobra.Command) *config.Simulation {
	simCfg, err := config.LoadSimulation(configPath)
	if err != nil {
		logrus.WithError(err).Fatal("failed to load simulation config")
	}
	if cmd.Flags().Changed("seed") {
		simCfg.Seed = seed
	}
	if cmd.Flags().Changed("commit-interval") {
		simCfg.CommitInterval = commitInterval
	}
	if err := simCfg.Validate(); err != nil {
		logrus.WithError(err).Fatal("invalid simulation config")
	}
	return simCfg
}

func openDatabase() *gorm.DB {
	if sqlitePath != "" {
		db, err := database.OpenSQLite(sqlitePath)
		if err != nil {
			logrus.WithError(err).Fatal("failed to open sqlite database")
		}
		return db
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load environment config")
	}
	db, err := database.Initialize(&cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to database")
	}
	return db
}

func init() {
	generateCmd.Flags().IntVar(&days, "days", 0, "Number of historical days to simulate (0 uses the config default)")
	generateCmd.Flags().Int64Var(&seed, "seed", 42, "Root random seed")
	generateCmd.Flags().IntVar(&commitInterval, "commit-interval", 10, "Ticks between batch commits")
	generateCmd.Flags().StringVar(&configPath, "config", "", "Path to a YAML simulation config")

	rootCmd.PersistentFlags().StringVar(&sqlitePath, "sqlite", "", "Generate into a SQLite file instead of Postgres")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(resetCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
