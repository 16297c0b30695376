package main

import (
	"flag"
	"os"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ChizhovVadim/VariantGo/internal/config"
	"github.com/ChizhovVadim/VariantGo/pkg/common"
	"github.com/ChizhovVadim/VariantGo/pkg/console"
	"github.com/ChizhovVadim/VariantGo/pkg/variants"
)

/*
VariantGo Copyright (C) 2017-2023 Vadim Chizhov
This program is free software: you can redistribute it and/or modify it under the terms of the GNU General Public License as published by the Free Software Foundation, either version 3 of the License, or (at your option) any later version.
This program is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the GNU General Public License for more details.
You should have received a copy of the GNU General Public License along with this program. If not, see <http://www.gnu.org/licenses/>.
*/

const name = "VariantGo"

var (
	versionName = "dev"
	flgConfig   string
	flgVariant  string
	flgFEN      string
)

func main() {
	flag.StringVar(&flgConfig, "config", "", "path to config file")
	flag.StringVar(&flgVariant, "variant", "", "board variant: "+strings.Join(variants.Names(), ", "))
	flag.StringVar(&flgFEN, "fen", "", "classical start position")
	flag.Parse()

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	var cfg, err = config.Load(flgConfig)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	zerolog.SetGlobalLevel(cfg.LogLevel())
	if flgVariant != "" {
		cfg.Game.Variant = flgVariant
	}
	if flgFEN != "" {
		cfg.Game.FEN = flgFEN
	}

	log.Info().
		Str("name", name).
		Str("version", versionName).
		Str("runtime", runtime.Version()).
		Int("cpus", runtime.NumCPU()).
		Str("variant", cfg.Game.Variant).
		Msg("starting")

	var variant, board = setupGame(cfg)
	var protocol = console.New(variant, board, cfg.EngineOptions(log.Logger), os.Stdout)
	protocol.Run(os.Stdin)
}

func setupGame(cfg *config.Config) (*variants.Variant, *common.Board) {
	if cfg.Game.FEN != "" {
		var variant, board, err = variants.ClassicalFromFEN(cfg.Game.FEN)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to set up position")
		}
		return variant, board
	}
	var variant, err = variants.ByName(cfg.Game.Variant)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up position")
	}
	return variant, variant.NewGame()
}
