package preview

import "html/template"

var templates = map[string]*template.Template{
	"app":      template.Must(template.New("app").Parse(genericTemplate)),
	"game":     template.Must(template.New("game").Parse(gameTemplate)),
	"shopping": template.Must(template.New("shopping").Parse(shoppingTemplate)),
	"chat":     template.Must(template.New("chat").Parse(chatTemplate)),
}

const baseStyle = `
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            background: linear-gradient(135deg, {{.Color}}, {{.Color}}dd);
            min-height: 100vh;
            color: white;
            overflow-x: hidden;
        }
        .app-container { min-height: 100vh; display: flex; flex-direction: column; }
        .app-header {
            padding: 20px;
            text-align: center;
            background: rgba(0, 0, 0, 0.15);
        }
        .app-header h1 { font-size: 1.4rem; }
        .content-card {
            background: rgba(255, 255, 255, 0.12);
            border-radius: 16px;
            padding: 24px;
            margin: 16px;
        }
        .mock-button {
            display: inline-block;
            background: rgba(255, 255, 255, 0.25);
            border-radius: 8px;
            padding: 10px 24px;
            margin-top: 12px;
            cursor: pointer;
        }
        .nav-bar {
            display: flex;
            justify-content: space-around;
            background: rgba(0, 0, 0, 0.2);
            padding: 12px 0;
            margin-top: auto;
        }
        .nav-item { cursor: pointer; opacity: 0.8; font-size: 0.9rem; }
        .nav-item.active { opacity: 1; font-weight: 600; }
`

const genericTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Name}} - Preview</title>
    <style>` + baseStyle + `
        .screen-header h2 { padding: 16px; }
        .mock-input { margin-top: 16px; }
        .mock-input label { display: block; font-size: 0.85rem; margin-bottom: 4px; }
        .mock-input input {
            width: 100%;
            border: none;
            border-radius: 8px;
            padding: 10px;
            background: rgba(255, 255, 255, 0.2);
            color: white;
        }
    </style>
</head>
<body>
    <div class="app-container">
        <div class="app-header"><h1>{{.Name}}</h1></div>
        {{range $i, $screen := .Screens}}
        <div class="screen" id="screen-{{$screen}}" {{if $i}}style="display: none;"{{end}}>
            <div class="screen-header"><h2>{{$screen}}</h2></div>
            <div class="content-card">
                <h3>Bem-vindo à tela {{$screen}}</h3>
                <p>Esta é uma prévia da tela {{$screen}} do seu app.</p>
                <div class="mock-button">Botão de Ação</div>
                <div class="mock-input">
                    <label>Campo de entrada</label>
                    <input type="text" placeholder="Digite algo..." readonly>
                </div>
            </div>
        </div>
        {{end}}
        <div class="nav-bar">
            {{range $i, $screen := .NavScreens}}
            <div class="nav-item{{if not $i}} active{{end}}" data-screen="{{$screen}}">{{$screen}}</div>
            {{end}}
        </div>
    </div>
    <script>
        document.querySelectorAll('.nav-item').forEach(function (item) {
            item.addEventListener('click', function () {
                document.querySelectorAll('.screen').forEach(function (s) { s.style.display = 'none'; });
                document.querySelectorAll('.nav-item').forEach(function (n) { n.classList.remove('active'); });
                var screen = document.getElementById('screen-' + item.dataset.screen);
                if (screen) { screen.style.display = 'block'; }
                item.classList.add('active');
            });
        });
    </script>
</body>
</html>
`

const gameTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Name}} - Preview</title>
    <style>` + baseStyle + `
        .game-board {
            display: grid;
            grid-template-columns: repeat(3, 1fr);
            gap: 10px;
            padding: 24px;
        }
        .game-tile {
            aspect-ratio: 1;
            background: rgba(255, 255, 255, 0.18);
            border-radius: 12px;
            display: flex;
            align-items: center;
            justify-content: center;
            font-size: 1.6rem;
        }
        .score-bar { text-align: center; padding: 12px; font-size: 1.1rem; }
    </style>
</head>
<body>
    <div class="app-container">
        <div class="app-header"><h1>{{.Name}}</h1></div>
        <div class="score-bar">Pontuação: 0</div>
        <div class="game-board">
            <div class="game-tile">🎮</div><div class="game-tile">⭐</div><div class="game-tile">🏆</div>
            <div class="game-tile">💎</div><div class="game-tile">🎯</div><div class="game-tile">🚀</div>
        </div>
        <div class="content-card">
            <h3>Prévia do jogo</h3>
            <p>Esta é uma prévia do seu jogo {{.Name}}.</p>
            <div class="mock-button">Jogar</div>
        </div>
        <div class="nav-bar">
            {{range $i, $screen := .NavScreens}}
            <div class="nav-item{{if not $i}} active{{end}}">{{$screen}}</div>
            {{end}}
        </div>
    </div>
</body>
</html>
`

const shoppingTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Name}} - Preview</title>
    <style>` + baseStyle + `
        .product-grid {
            display: grid;
            grid-template-columns: repeat(2, 1fr);
            gap: 12px;
            padding: 16px;
        }
        .product-card {
            background: rgba(255, 255, 255, 0.12);
            border-radius: 12px;
            padding: 12px;
            text-align: center;
        }
        .product-image { font-size: 2rem; padding: 16px 0; }
        .product-price { font-weight: 600; margin-top: 6px; }
    </style>
</head>
<body>
    <div class="app-container">
        <div class="app-header"><h1>{{.Name}}</h1></div>
        <div class="product-grid">
            <div class="product-card"><div class="product-image">👕</div><div>Produto 1</div><div class="product-price">R$ 49,90</div></div>
            <div class="product-card"><div class="product-image">👟</div><div>Produto 2</div><div class="product-price">R$ 199,90</div></div>
            <div class="product-card"><div class="product-image">🎧</div><div>Produto 3</div><div class="product-price">R$ 89,90</div></div>
            <div class="product-card"><div class="product-image">⌚</div><div>Produto 4</div><div class="product-price">R$ 299,90</div></div>
        </div>
        <div class="content-card">
            <div class="mock-button">Ver carrinho</div>
        </div>
        <div class="nav-bar">
            {{range $i, $screen := .NavScreens}}
            <div class="nav-item{{if not $i}} active{{end}}">{{$screen}}</div>
            {{end}}
        </div>
    </div>
</body>
</html>
`

const chatTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Name}} - Preview</title>
    <style>` + baseStyle + `
        .chat-list { padding: 16px; display: flex; flex-direction: column; gap: 10px; }
        .chat-bubble {
            max-width: 75%;
            padding: 10px 14px;
            border-radius: 16px;
            background: rgba(255, 255, 255, 0.18);
        }
        .chat-bubble.own {
            align-self: flex-end;
            background: rgba(0, 0, 0, 0.25);
        }
        .chat-input-bar {
            display: flex;
            gap: 8px;
            padding: 12px 16px;
        }
        .chat-input-bar input {
            flex: 1;
            border: none;
            border-radius: 20px;
            padding: 10px 16px;
            background: rgba(255, 255, 255, 0.2);
            color: white;
        }
    </style>
</head>
<body>
    <div class="app-container">
        <div class="app-header"><h1>{{.Name}}</h1></div>
        <div class="chat-list">
            <div class="chat-bubble">Olá! Bem-vindo ao {{.Name}}.</div>
            <div class="chat-bubble own">Oi! Esta é uma prévia do chat.</div>
            <div class="chat-bubble">As mensagens reais aparecerão aqui.</div>
        </div>
        <div class="chat-input-bar">
            <input type="text" placeholder="Digite uma mensagem..." readonly>
            <div class="mock-button">Enviar</div>
        </div>
        <div class="nav-bar">
            {{range $i, $screen := .NavScreens}}
            <div class="nav-item{{if not $i}} active{{end}}">{{$screen}}</div>
            {{end}}
        </div>
    </div>
</body>
</html>
`
