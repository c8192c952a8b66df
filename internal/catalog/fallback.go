// Package catalog bundles the static fallback datasets. A misconfigured
// or empty backend must never produce an empty-looking catalog.
package catalog

import "github.com/otaviobrantes/lumen/internal/entity"

func intptr(v int) *int { return &v }

// FallbackVideos is served whenever the videos table is empty or
// unreachable.
var FallbackVideos = []*entity.Video{
	{
		ID:           "1",
		Title:        "A História de Moisés",
		Description:  "Siga a jornada épica de fé e libertação enquanto Moisés lidera os israelitas para fora do Egito rumo à Terra Prometida.",
		ThumbnailURL: "https://images.unsplash.com/photo-1500375592092-40eb2168fd21?q=80&w=2788&auto=format&fit=crop",
		VideoURL:     "https://www.youtube.com/embed/adKk813m7Ts",
		Source:       entity.SourceEmbed,
		Duration:     "23m",
		Category:     "Histórias Bíblicas",
		IsNew:        true,
		IsPremium:    true,
	},
	{
		ID:           "2",
		Title:        "Davi e Golias",
		Description:  "Um jovem pastor enfrenta um guerreiro gigante armado apenas com uma funda e sua inabalável fé em Deus.",
		ThumbnailURL: "https://images.unsplash.com/photo-1535025639604-9a804c092faa?q=80&w=2000&auto=format&fit=crop",
		VideoURL:     "https://www.youtube.com/embed/7zL_vO7MvTI",
		Source:       entity.SourceEmbed,
		Duration:     "25m",
		Category:     "Infantil",
		Progress:     intptr(45),
		IsPremium:    false,
	},
	{
		ID:           "3",
		Title:        "O Nascimento de Jesus",
		Description:  "A história do primeiro Natal. Maria, José e o milagre na manjedoura que mudou o mundo para sempre.",
		ThumbnailURL: "https://images.unsplash.com/photo-1512641406448-6574e777bec6?q=80&w=2574&auto=format&fit=crop",
		VideoURL:     "https://www.youtube.com/embed/QJg6JdaMhWw",
		Source:       entity.SourceEmbed,
		Duration:     "27m",
		Category:     "Filmes",
		IsPremium:    true,
	},
	{
		ID:           "4",
		Title:        "Série: Atos dos Apóstolos",
		Description:  "Uma animação visualmente rica explicando o livro de Atos e o início da Igreja Primitiva.",
		ThumbnailURL: "https://images.unsplash.com/photo-1461360228754-6e81c478b882?q=80&w=2674&auto=format&fit=crop",
		VideoURL:     "https://www.youtube.com/embed/K4O0s10_J1g",
		Source:       entity.SourceEmbed,
		Duration:     "15m",
		Category:     "Estudos",
		IsPremium:    true,
	},
	{
		ID:           "5",
		Title:        "A Arca de Noé",
		Description:  "A clássica história do dilúvio, a construção da arca e a promessa do arco-íris para a humanidade.",
		ThumbnailURL: "https://images.unsplash.com/photo-1520052205864-92d242b3a76b?q=80&w=2000&auto=format&fit=crop",
		VideoURL:     "https://www.youtube.com/embed/wnqjU2N6d_s",
		Source:       entity.SourceEmbed,
		Duration:     "22m",
		Category:     "Infantil",
		IsPremium:    false,
	},
	{
		ID:           "6",
		Title:        "Daniel na Cova dos Leões",
		Description:  "Fé sob fogo: Daniel recusa-se a comprometer suas crenças e Deus fecha a boca dos leões.",
		ThumbnailURL: "https://images.unsplash.com/photo-1614027164847-1b28cfe1df60?q=80&w=2586&auto=format&fit=crop",
		VideoURL:     "https://www.youtube.com/embed/T6_Y5r6YcKQ",
		Source:       entity.SourceEmbed,
		Duration:     "25m",
		Category:     "Histórias Bíblicas",
		Progress:     intptr(10),
		IsPremium:    true,
	},
}

// Activities is the static family-zone dataset, read-only at runtime.
var Activities = []*entity.Activity{
	{
		ID:           "a1",
		Title:        "Colorindo a Arca de Noé",
		Type:         entity.ActivityColoring,
		ThumbnailURL: "https://images.unsplash.com/photo-1513364776144-60967b0f800f?q=80&w=2671&auto=format&fit=crop",
		DownloadURL:  "#",
		Difficulty:   entity.DifficultyEasy,
	},
	{
		ID:           "a2",
		Title:        "Caça-Palavras: 12 Discípulos",
		Type:         entity.ActivityPuzzle,
		ThumbnailURL: "https://images.unsplash.com/photo-1580582932707-520aed937b7b?q=80&w=2600&auto=format&fit=crop",
		DownloadURL:  "#",
		Difficulty:   entity.DifficultyMedium,
	},
	{
		ID:           "a3",
		Title:        "Monte o Templo de Salomão",
		Type:         entity.ActivityPDF,
		ThumbnailURL: "https://images.unsplash.com/photo-1518709268805-4e9042af9f23?q=80&w=2568&auto=format&fit=crop",
		DownloadURL:  "#",
		Difficulty:   entity.DifficultyHard,
	},
	{
		ID:           "a4",
		Title:        "Cards de Trivia Bíblica",
		Type:         entity.ActivityGame,
		ThumbnailURL: "https://images.unsplash.com/photo-1606167668584-78701c57f13d?q=80&w=2670&auto=format&fit=crop",
		DownloadURL:  "#",
		Difficulty:   entity.DifficultyMedium,
	},
}
