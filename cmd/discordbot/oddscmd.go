/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	_ "embed"
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/mikeb26/crucible-oddsbot/sim"
	"github.com/mikeb26/crucible-oddsbot/snooker"
)

type CrucibleSubCommand string

const (
	CrucibleAboutCmd    CrucibleSubCommand = "about"
	CrucibleHelpCmd     CrucibleSubCommand = "help"
	CrucibleRankingsCmd CrucibleSubCommand = "rankings"
	CrucibleOddsCmd     CrucibleSubCommand = "odds"
)

var crucibleSubCmdHdlrs = map[CrucibleSubCommand]CmdHandler{
	CrucibleAboutCmd:    crucibleAboutCmdHandler,
	CrucibleHelpCmd:     crucibleHelpCmdHandler,
	CrucibleRankingsCmd: crucibleRankingsCmdHandler,
	CrucibleOddsCmd:     crucibleOddsCmdHandler,
}

func crucibleCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	data := inter.ApplicationCommandData()
	hdlr := crucibleHelpCmdHandler
	if len(data.Options) > 0 {
		if subName := data.Options[0].Name; subName != "" {
			h, ok := crucibleSubCmdHdlrs[CrucibleSubCommand(subName)]
			if ok {
				hdlr = h
			}
		}
	}
	return hdlr(ctx, inter)
}

//go:embed about.txt
var aboutText string

func crucibleAboutCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}

	resp.Data.Content = truncateContent(aboutText)

	return resp
}

//go:embed help.md
var helpText string

func crucibleHelpCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}

	resp.Data.Content = truncateContent(helpText)
	return resp
}

func crucibleRankingsCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}

	data := inter.ApplicationCommandData()
	count := int64(16) // default
	broadcast := false // default
	if len(data.Options) > 0 {
		for _, opt := range data.Options[0].Options {
			if opt.Name == "count" {
				count = opt.IntValue()
			} else if opt.Name == "broadcast" {
				broadcast = opt.BoolValue()
			}
		}
	}
	// enforce bounds
	if count <= 0 {
		count = 16
	} else if count > 32 {
		count = 32
	}

	snookerClient := snooker.NewClient(ctx)
	players, err := snookerClient.FetchRankings(ctx)
	if err != nil {
		resp.Data.Content = fmt.Sprintf("Error fetching rankings: %v", err)
		log.Printf("discordbot.rankings: %v", resp.Data.Content)
		return resp
	}

	if int64(len(players)) > count {
		players = players[:count]
	}

	var sb strings.Builder
	sb.WriteString("**World Rankings**\n")
	for _, p := range players {
		sb.WriteString(fmt.Sprintf("%v. %v (%v)\n", p.Position, p.Name,
			p.Points))
	}
	resp.Data.Content = truncateContent(sb.String())

	if broadcast {
		resp.Data.Flags = 0
	}

	return resp
}

func crucibleOddsCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}

	data := inter.ApplicationCommandData()
	var eventID int64
	trials := int64(10000) // default
	broadcast := false     // default
	if len(data.Options) > 0 {
		for _, opt := range data.Options[0].Options {
			if opt.Name == "eventid" {
				eventID = opt.IntValue()
			} else if opt.Name == "trials" {
				trials = opt.IntValue()
			} else if opt.Name == "broadcast" {
				broadcast = opt.BoolValue()
			}
		}
	}
	if eventID <= 0 {
		resp.Data.Content = "Please provide a valid eventid."
		return resp
	}
	// enforce bounds; interactions must answer within discord's deadline
	if trials <= 0 {
		trials = 10000
	} else if trials > 100000 {
		trials = 100000
	}

	snookerClient := snooker.NewClient(ctx)
	detail, err := snookerClient.FetchDraw(ctx, eventID)
	if err != nil {
		resp.Data.Content = fmt.Sprintf("Error fetching draw: %v", err)
		log.Printf("discordbot.odds: %v", resp.Data.Content)
		return resp
	}
	players, err := snookerClient.FetchRankings(ctx)
	if err != nil {
		resp.Data.Content = fmt.Sprintf("Error fetching rankings: %v", err)
		log.Printf("discordbot.odds: %v", resp.Data.Content)
		return resp
	}
	ratings := snooker.RatingsFromRankings(players)

	bracket, err := sim.BuildBracket(len(detail.Fixtures)*2, detail.BestOf)
	if err != nil {
		resp.Data.Content = fmt.Sprintf("Error building bracket: %v", err)
		log.Printf("discordbot.odds: %v", resp.Data.Content)
		return resp
	}

	result, err := sim.Run(bracket, ratings, detail.Fixtures, sim.RunOptions{
		Trials: int(trials),
		Seed:   1,
	})
	if err != nil {
		resp.Data.Content = fmt.Sprintf("Error simulating: %v", err)
		log.Printf("discordbot.odds: %v", resp.Data.Content)
		return resp
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("**%v**\n", detail.Name))
	sb.WriteString(fmt.Sprintf("```\n%s```",
		sim.BuildOddsOutput(bracket, result)))
	resp.Data.Content = truncateContent(sb.String())

	if broadcast {
		resp.Data.Flags = 0
	}

	return resp
}

// https://discord.com/developers/docs/resources/channel#start-thread-in-forum-or-media-channel-forum-and-media-thread-message-params-object
// limits messages to 2k characters
func truncateContent(s string) string {
	const MsgLimit = 1988 // keep space for newlines and markdown
	runes := []rune(s)
	if len(runes) > MsgLimit {
		s = fmt.Sprintf("%v...", string(runes[:MsgLimit]))
	}
	return s
}
