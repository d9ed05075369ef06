package client

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/MKhiriev/go-nft-keeper/models"
)

func (a *App) newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
}

func (a *App) printNFTs(nfts []models.NFT) error {
	if len(nfts) == 0 {
		fmt.Fprintln(a.out, "no NFTs")
		return nil
	}

	tw := a.newTable()
	fmt.Fprintln(tw, "ID\tNAME\tRATING\tPRICE\tAUTHOR")
	for _, nft := range nfts {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n",
			nft.ID, nft.Name, nft.Rating, strconv.FormatFloat(nft.Price, 'f', 2, 64), nft.Author)
	}
	return tw.Flush()
}

func (a *App) printMarkedNFTs(nfts []models.NFT, m marks) error {
	if len(nfts) == 0 {
		fmt.Fprintln(a.out, "no NFTs")
		return nil
	}

	tw := a.newTable()
	fmt.Fprintln(tw, "ID\tNAME\tRATING\tPRICE\tAUTHOR\tLIKED\tIN CART")
	for _, nft := range nfts {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t%s\t%s\n",
			nft.ID, nft.Name, nft.Rating, strconv.FormatFloat(nft.Price, 'f', 2, 64), nft.Author,
			yesNo(m.liked(nft.ID)), yesNo(m.inCart(nft.ID)))
	}
	return tw.Flush()
}

func (a *App) printNFTDetail(nft models.NFT, m marks) error {
	tw := a.newTable()
	fmt.Fprintf(tw, "ID\t%s\n", nft.ID)
	fmt.Fprintf(tw, "Name\t%s\n", nft.Name)
	fmt.Fprintf(tw, "Author\t%s\n", nft.Author)
	fmt.Fprintf(tw, "Rating\t%d\n", nft.Rating)
	fmt.Fprintf(tw, "Price\t%s\n", strconv.FormatFloat(nft.Price, 'f', 2, 64))
	if nft.Description != "" {
		fmt.Fprintf(tw, "Description\t%s\n", nft.Description)
	}
	fmt.Fprintf(tw, "Liked\t%s\n", yesNo(m.liked(nft.ID)))
	fmt.Fprintf(tw, "In cart\t%s\n", yesNo(m.inCart(nft.ID)))
	return tw.Flush()
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func (a *App) printCollections(collections []models.NFTCollection) error {
	if len(collections) == 0 {
		fmt.Fprintln(a.out, "no collections")
		return nil
	}

	tw := a.newTable()
	fmt.Fprintln(tw, "ID\tNAME\tNFTS\tAUTHOR")
	for _, c := range collections {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", c.ID, c.Name, c.NFTCount(), c.Author)
	}
	return tw.Flush()
}

func (a *App) printChange(change models.MembershipChange) {
	status := "confirmed"
	if !change.Confirmed {
		status = "rolled back"
	}
	fmt.Fprintf(a.out, "%s %s: %s (%s)\n",
		change.Owner, change.ID, membershipLabel(change.Owner.Kind, change.Member), status)
}
