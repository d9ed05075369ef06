package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-nft-keeper/internal/service"
	"github.com/MKhiriev/go-nft-keeper/models"
)

// listMembers prints the details of every member of kind, in the stored NFT
// order.
func (a *App) listMembers(ctx context.Context, kind models.MembershipKind) error {
	owner, err := a.owner(kind)
	if err != nil {
		return err
	}

	sync, err := a.services.Registry.Synchronizer(ctx, owner)
	if err != nil {
		return fmt.Errorf("load %s: %w", owner, err)
	}

	nfts, err := a.services.DetailsService.FetchAll(ctx, sync.Snapshot())
	if err != nil {
		return fmt.Errorf("fetch details of %s: %w", owner, err)
	}

	sort, err := a.services.PreferencesService.NFTSort(ctx)
	if err != nil {
		return err
	}
	service.SortNFTs(nfts, sort)

	return a.printNFTs(nfts)
}

// toggle flips the membership of the id in args[0] and waits until the
// backend confirms or the change is rolled back.
func (a *App) toggle(ctx context.Context, kind models.MembershipKind, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: nft id", ErrMissingArgument)
	}

	id, err := models.NormalizeIdentifier(args[0])
	if err != nil {
		return err
	}

	owner, err := a.owner(kind)
	if err != nil {
		return err
	}

	sync, err := a.services.Registry.Synchronizer(ctx, owner)
	if err != nil {
		return fmt.Errorf("load %s: %w", owner, err)
	}

	member, err := sync.ToggleAndWait(ctx, id)
	if err != nil {
		var toggleErr *service.ToggleError
		if errors.As(err, &toggleErr) {
			fmt.Fprintf(a.out, "%s: not saved, %s failure; change reverted\n", id, toggleErr.Kind)
		}
		return err
	}

	fmt.Fprintf(a.out, "%s: %s\n", id, membershipLabel(kind, member))
	return nil
}

func (a *App) listCollections(ctx context.Context) error {
	sort, err := a.services.PreferencesService.CollectionSort(ctx)
	if err != nil {
		return err
	}

	collections, err := a.services.CatalogService.Collections(ctx, sort)
	if err != nil {
		return fmt.Errorf("list collections: %w", err)
	}

	return a.printCollections(collections)
}

// listOwned prints the NFTs of the configured profile, marked with their
// like and cart state.
func (a *App) listOwned(ctx context.Context) error {
	if a.owners.ProfileID == "" {
		return fmt.Errorf("%w: profile", ErrMissingOwner)
	}

	owned, err := a.services.CatalogService.OwnedNFTs(ctx, a.owners.ProfileID)
	if err != nil {
		return err
	}

	return a.listMarked(ctx, owned)
}

// showCollection prints one collection and its members, marked with their
// like and cart state.
func (a *App) showCollection(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: collection id", ErrMissingArgument)
	}

	id, err := models.NormalizeIdentifier(args[0])
	if err != nil {
		return err
	}

	collection, err := a.services.CatalogService.Collection(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s by %s, %d NFTs\n", collection.Name, collection.Author, collection.NFTCount())
	if collection.Description != "" {
		fmt.Fprintln(a.out, collection.Description)
	}

	return a.listMarked(ctx, collection.NFTs)
}

// showNFT prints the detail record of one NFT with its like and cart state.
func (a *App) showNFT(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: nft id", ErrMissingArgument)
	}

	id, err := models.NormalizeIdentifier(args[0])
	if err != nil {
		return err
	}

	m, err := a.loadMarks(ctx)
	if err != nil {
		return err
	}

	nfts, err := a.services.DetailsService.FetchAll(ctx, []models.Identifier{id})
	if err != nil {
		return fmt.Errorf("fetch nft %s: %w", id, err)
	}
	if len(nfts) == 0 {
		return fmt.Errorf("fetch nft %s: empty result", id)
	}

	return a.printNFTDetail(nfts[0], m)
}

// listMarked fetches the details of ids and prints them in the stored NFT
// order with their like and cart state.
func (a *App) listMarked(ctx context.Context, ids []models.Identifier) error {
	m, err := a.loadMarks(ctx)
	if err != nil {
		return err
	}

	nfts, err := a.services.DetailsService.FetchAll(ctx, ids)
	if err != nil {
		return fmt.Errorf("fetch details: %w", err)
	}

	sort, err := a.services.PreferencesService.NFTSort(ctx)
	if err != nil {
		return err
	}
	service.SortNFTs(nfts, sort)

	return a.printMarkedNFTs(nfts, m)
}

// marks answers whether an NFT is liked or in the cart. An owner that is not
// configured marks nothing.
type marks struct {
	likes service.MembershipSynchronizer
	cart  service.MembershipSynchronizer
}

func (m marks) liked(id models.Identifier) bool {
	return m.likes != nil && m.likes.Includes(id)
}

func (m marks) inCart(id models.Identifier) bool {
	return m.cart != nil && m.cart.Includes(id)
}

func (a *App) loadMarks(ctx context.Context) (marks, error) {
	var m marks
	for _, kind := range []models.MembershipKind{models.KindLikes, models.KindCart} {
		owner, err := a.owner(kind)
		if errors.Is(err, ErrMissingOwner) {
			continue
		}

		sync, err := a.services.Registry.Synchronizer(ctx, owner)
		if err != nil {
			return marks{}, fmt.Errorf("load %s: %w", owner, err)
		}

		if kind == models.KindCart {
			m.cart = sync
		} else {
			m.likes = sync
		}
	}
	return m, nil
}

// setSort handles "sort nfts <order>" and "sort collections <order>".
func (a *App) setSort(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("%w: sort <nfts|collections> <order>", ErrMissingArgument)
	}

	target, value := args[0], args[1]
	switch target {
	case "nfts":
		if err := a.services.PreferencesService.SetNFTSort(ctx, models.NFTSort(value)); err != nil {
			return err
		}
	case "collections":
		if err := a.services.PreferencesService.SetCollectionSort(ctx, models.CollectionSort(value)); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: sort %q", ErrUnknownCommand, target)
	}

	fmt.Fprintf(a.out, "%s sorted by %s\n", target, value)
	return nil
}

// watch loads every configured owner, starts the resync job and prints
// settled toggles and server-side changes until ctx is cancelled.
func (a *App) watch(ctx context.Context) error {
	changes, unsubscribe := a.services.Registry.Subscribe(64)
	defer unsubscribe()

	for _, kind := range []models.MembershipKind{models.KindLikes, models.KindCart} {
		owner, err := a.owner(kind)
		if errors.Is(err, ErrMissingOwner) {
			continue
		}
		if _, err = a.services.Registry.Synchronizer(ctx, owner); err != nil {
			return fmt.Errorf("load %s: %w", owner, err)
		}
	}

	a.workers.Start(ctx)
	defer a.workers.Stop()

	fmt.Fprintln(a.out, "watching membership changes, press Ctrl+C to stop")
	for {
		select {
		case <-ctx.Done():
			return nil
		case change, ok := <-changes:
			if !ok {
				return nil
			}
			a.printChange(change)
		}
	}
}

func (a *App) printVersion() {
	fmt.Fprint(a.out, a.buildInfo)
}

func membershipLabel(kind models.MembershipKind, member bool) string {
	switch {
	case kind == models.KindCart && member:
		return "added to cart"
	case kind == models.KindCart:
		return "removed from cart"
	case member:
		return "liked"
	}
	return "unliked"
}
