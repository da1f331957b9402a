package cli

import (
	"github.com/alecthomas/kong"
)

const description = `PlantPal keeps track of your houseplants' care.

Connection settings are read from a JSON file (-c PATH or $PLANTPAL_CONFIG)
and may be overridden with -a URL, -db PATH and -timeout SECONDS anywhere on
the command line.`

// CLI is the kong command tree.
type CLI struct {
	Version kong.VersionFlag `help:"Print version and exit."`

	SignIn  SignInCmd  `cmd:"" name:"signin" help:"Sign in to your account."`
	SignUp  SignUpCmd  `cmd:"" name:"signup" help:"Create an account."`
	SignOut SignOutCmd `cmd:"" name:"signout" help:"Forget the stored session."`
	Status  StatusCmd  `cmd:"" help:"Show who is signed in."`

	Plants   PlantsCmd   `cmd:"" help:"Manage your plants."`
	Stats    StatsCmd    `cmd:"" help:"Show collection statistics and upcoming care."`
	Journal  JournalCmd  `cmd:"" help:"Keep a plant journal."`
	Articles ArticlesCmd `cmd:"" help:"Browse care guides."`

	Chat       ChatCmd       `cmd:"" help:"Chat with the plant care assistant."`
	Identify   IdentifyCmd   `cmd:"" help:"Identify a plant from a photo."`
	Fertilizer FertilizerCmd `cmd:"" help:"Get a fertilizing tip for one of your plants."`
}

type PlantsCmd struct {
	List      PlantsListCmd   `cmd:"" default:"withargs" help:"List plants (default)."`
	Show      PlantsShowCmd   `cmd:"" help:"Show one plant."`
	Add       PlantsAddCmd    `cmd:"" help:"Add a plant."`
	Edit      PlantsEditCmd   `cmd:"" help:"Edit a plant."`
	Delete    PlantsDeleteCmd `cmd:"" help:"Delete a plant."`
	Water     WaterCmd        `cmd:"" help:"Record a watering."`
	Fertilize FertilizeCmd    `cmd:"" help:"Record a fertilizing."`
	Groom     GroomCmd        `cmd:"" help:"Record a grooming."`
}

type JournalCmd struct {
	List   JournalListCmd   `cmd:"" default:"1" help:"List journal entries (default)."`
	Add    JournalAddCmd    `cmd:"" help:"Write a journal entry."`
	Delete JournalDeleteCmd `cmd:"" help:"Delete a journal entry."`
}

type ArticlesCmd struct {
	List ArticlesListCmd `cmd:"" default:"1" help:"List articles (default)."`
	Read ArticlesReadCmd `cmd:"" help:"Read an article."`
}

// Parse reads a command line into a kong context ready for App.Execute.
func Parse(args []string, version string, options ...kong.Option) (*kong.Context, error) {
	var cli CLI
	parser, err := kong.New(&cli, append([]kong.Option{
		kong.Name("plantpal"),
		kong.Description(description),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	}, options...)...)
	if err != nil {
		return nil, err
	}
	return parser.Parse(args)
}
