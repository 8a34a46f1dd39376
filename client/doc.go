// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package client is the client data layer for the Cat Vote API.

# API

API wraps the HTTP endpoints with typed calls:

	api := client.NewAPI("http://localhost:3000/api", nil)
	cats, err := api.ListCats(ctx)

Non-2xx answers come back as *StatusError.

# Cat Source

CatSource fetches [{id, url}] records from TheCatAPI (or anything shaped
like it). All of its failures wrap ErrUpstream.

# Provider

Provider holds {Cats, Winner, Loading, Phase, Error} for the screens.
Each fetch cycle goes idle → loading → success or error.

	p := client.NewProvider(api, source)
	if err := p.FetchCats(ctx); err != nil {
		fmt.Println(p.State().Error)
	}

FetchCats seeds from the source exactly once per call when the API has no
cats. SubmitVote refetches cats and winner after a successful write.
*/
package client
