package client

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-nft-keeper/internal/config"
	"github.com/MKhiriev/go-nft-keeper/internal/logger"
	"github.com/MKhiriev/go-nft-keeper/internal/service"
	"github.com/MKhiriev/go-nft-keeper/internal/workers"
	"github.com/MKhiriev/go-nft-keeper/models"
)

const usage = `usage: nft-client <command>

commands:
  likes                          list liked NFTs
  cart                           list NFTs in the cart
  mine                           list NFTs owned by the profile
  nft <id>                       show one NFT with its like and cart state
  like <id>                      toggle the like of an NFT
  cart-toggle <id>               add an NFT to the cart or remove it
  collections                    list the catalog
  collection <id>                show one collection and its NFTs
  sort nfts <price|rating|name>  store the NFT list order
  sort collections <name|nft_count>
                                 store the catalog order
  watch                          resync periodically and print changes
  version                        print build information`

type App struct {
	services  *service.ClientServices
	workers   *workers.Workers
	owners    config.ClientOwner
	buildInfo models.AppBuildInfo

	out    io.Writer
	logger *logger.Logger
}

// NewApp wires the client services into a runnable command dispatcher.
// Tables and messages are written to out.
func NewApp(services *service.ClientServices, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, out io.Writer, logger *logger.Logger) (*App, error) {
	if services == nil {
		return nil, fmt.Errorf("client services are required")
	}

	return &App{
		services:  services,
		workers:   workers.NewWorkers(services.ResyncJob),
		owners:    cfg.Owner,
		buildInfo: buildInfo,
		out:       out,
		logger:    logger,
	}, nil
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, usage)
		return nil
	}

	command, rest := args[0], args[1:]
	a.logger.Debug().Str("command", command).Strs("args", rest).Msg("running command")

	switch command {
	case "likes":
		return a.listMembers(ctx, models.KindLikes)
	case "cart":
		return a.listMembers(ctx, models.KindCart)
	case "mine":
		return a.listOwned(ctx)
	case "nft":
		return a.showNFT(ctx, rest)
	case "like":
		return a.toggle(ctx, models.KindLikes, rest)
	case "cart-toggle":
		return a.toggle(ctx, models.KindCart, rest)
	case "collections":
		return a.listCollections(ctx)
	case "collection":
		return a.showCollection(ctx, rest)
	case "sort":
		return a.setSort(ctx, rest)
	case "watch":
		return a.watch(ctx)
	case "version":
		a.printVersion()
		return nil
	case "help", "-h", "--help":
		fmt.Fprintln(a.out, usage)
		return nil
	}

	fmt.Fprintln(a.out, usage)
	return fmt.Errorf("%w: %q", ErrUnknownCommand, command)
}

// owner resolves the configured owner of kind.
func (a *App) owner(kind models.MembershipKind) (models.Owner, error) {
	id := a.owners.ProfileID
	if kind == models.KindCart {
		id = a.owners.CartID
	}
	if id == "" {
		return models.Owner{}, fmt.Errorf("%w: %s", ErrMissingOwner, kind)
	}
	return models.Owner{ID: id, Kind: kind}, nil
}
