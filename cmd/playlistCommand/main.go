package playlistCommand

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/t-kuni/openfit/domain/repository/file"
	"github.com/t-kuni/openfit/domain/service/audioName"
	"github.com/t-kuni/openfit/domain/service/playlistResolve"
)

type PlaylistCommand struct {
	CobraCommand *cobra.Command
}

func NewPlaylistCommand(
	playlistResolveService *playlistResolve.PlaylistResolveService,
	audioNameService *audioName.AudioNameService,
	fileRepository file.Repository,
) *PlaylistCommand {
	cmd := &cobra.Command{
		Use:   "playlist",
		Short: "Show the workout playlist",
	}

	cmd.AddCommand(newListCommand(playlistResolveService, audioNameService, fileRepository))
	cmd.AddCommand(newSourceCommand(playlistResolveService))

	return &PlaylistCommand{
		CobraCommand: cmd,
	}
}

func newListCommand(
	playlistResolveService *playlistResolve.PlaylistResolveService,
	audioNameService *audioName.AudioNameService,
	fileRepository file.Repository,
) *cobra.Command {
	var shuffle bool
	var paths bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the tracks of the playlist source",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := playlistResolveService.Reload(); err != nil {
				return err
			}
			if shuffle {
				playlistResolveService.Shuffle()
			}

			// Tracks can disappear between the scan and the listing.
			tracks := playlistResolveService.Tracks()
			for i := len(tracks) - 1; i >= 0; i-- {
				if !fileRepository.IsFile(tracks[i]) {
					if err := playlistResolveService.RemoveAt(i); err != nil {
						return err
					}
				}
			}

			for i, track := range playlistResolveService.Tracks() {
				name := track
				if !paths {
					name = audioNameService.Label(track)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d. %s\n", i+1, name)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&shuffle, "shuffle", false, "shuffle the tracks")
	cmd.Flags().BoolVar(&paths, "paths", false, "print file paths instead of track names and lengths")

	return cmd
}

func newSourceCommand(playlistResolveService *playlistResolve.PlaylistResolveService) *cobra.Command {
	return &cobra.Command{
		Use:   "source [PATH]",
		Short: "Show or change the music directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), playlistResolveService.Source())
				return nil
			}

			if err := playlistResolveService.SetSource(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Playlist source set to %s (%d tracks)\n", args[0], len(playlistResolveService.Tracks()))
			return nil
		},
	}
}
